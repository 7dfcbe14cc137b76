package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusCreated, map[string]string{"expense_id": "abc"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success": true, "data": {"expense_id": "abc"}}`, rr.Body.String())
}

func TestErrorWithDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorWithDetails(rr, http.StatusUnprocessableEntity, "MEMBER_NOT_FOUND", "no member matches Bob", map[string]any{"name": "Bob"})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var body APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "MEMBER_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Bob", body.Error.Details["name"])
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		fn     func(http.ResponseWriter, string)
		status int
		code   string
	}{
		{BadRequest, http.StatusBadRequest, "BAD_REQUEST"},
		{NotFound, http.StatusNotFound, "NOT_FOUND"},
		{InternalError, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{Unauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{Forbidden, http.StatusForbidden, "FORBIDDEN"},
		{Conflict, http.StatusConflict, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.fn(rr, "message")

			assert.Equal(t, tt.status, rr.Code)
			var body APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, "message", body.Error.Message)
		})
	}
}

func TestJSONWithMeta(t *testing.T) {
	rr := httptest.NewRecorder()
	JSONWithMeta(rr, http.StatusOK, []string{"a"}, &Meta{Page: 1, PerPage: 20, Total: 1, TotalPages: 1})

	assert.JSONEq(t, `{"success": true, "data": ["a"], "meta": {"page": 1, "per_page": 20, "total": 1, "total_pages": 1}}`, rr.Body.String())
}
