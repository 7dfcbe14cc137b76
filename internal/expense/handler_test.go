package expense

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/quicksplit/internal/draft"
	"github.com/fkhayef/quicksplit/pkg/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestRouter(h *Handler, auth bool) http.Handler {
	r := chi.NewRouter()
	if auth {
		r.Use(middleware.TestUserMiddleware("u-me"))
	}
	r.Mount("/expenses", h.Routes())
	r.Mount("/groups/{id}/expenses", h.GroupRoutes())
	return r
}

func postParse(t *testing.T, router http.Handler, groupID, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/groups/"+groupID+"/expenses/parse", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return rr, env
}

func TestHandlerCreateFromDescription(t *testing.T) {
	body := `{"description": "` + coffeeText + `"}`

	t.Run("created and readable", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.expectDrafts(
			draftOf("Coffee", 18),
			draftOf("Coffee", 18, payer("USER", 0.5), participant("Jane Doe", 0.5)),
		)
		router := newTestRouter(NewHandler(f.svc), true)

		rr, env := postParse(t, router, f.groupID, body)
		require.Equal(t, http.StatusCreated, rr.Code)

		var created CreateFromDescriptionResponse
		require.NoError(t, json.Unmarshal(env.Data, &created))
		require.NotEmpty(t, created.ExpenseID)

		req := httptest.NewRequest(http.MethodGet, "/expenses/"+created.ExpenseID, nil)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var got struct {
			Data ExpenseResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(18), got.Data.Amount)
		require.Len(t, got.Data.Participants, 2)
		assert.Equal(t, "u-me", got.Data.Participants[0].UserID)
		assert.Equal(t, 0.0, got.Data.Participants[0].Owed)
		assert.Equal(t, "u-jane", got.Data.Participants[1].UserID)
		assert.Equal(t, 9.0, got.Data.Participants[1].Owed)

		req = httptest.NewRequest(http.MethodGet, "/groups/"+f.groupID+"/expenses", nil)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), created.ExpenseID)
	})

	t.Run("unresolved member", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.expectDrafts(
			draftOf("Coffee", 18),
			draftOf("Coffee", 18, payer("USER", 0.5), participant("Bob", 0.5)),
		)

		rr, env := postParse(t, newTestRouter(NewHandler(f.svc), true), f.groupID, body)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "MEMBER_NOT_FOUND", env.Error.Code)
		assert.Equal(t, "Bob", env.Error.Details["name"])
	})

	t.Run("split mismatch", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.expectDrafts(
			draftOf("Coffee", 18),
			draftOf("Coffee", 18, payer("USER", 0.5), participant("Jane Doe", 0.4)),
		)

		rr, env := postParse(t, newTestRouter(NewHandler(f.svc), true), f.groupID, body)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "SPLIT_MISMATCH", env.Error.Code)
		assert.InDelta(t, 0.9, env.Error.Details["sum"], 1e-9)
	})

	t.Run("generation failure", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.gen.On("Generate", mock.Anything, coffeeText, draft.TierFast).Return(draftOf("Coffee", 18), nil).Once()
		f.gen.On("Generate", mock.Anything, coffeeText, draft.TierQuality).
			Return(nil, &draft.GenerationError{Tier: draft.TierQuality, Err: assert.AnError}).Once()

		rr, env := postParse(t, newTestRouter(NewHandler(f.svc), true), f.groupID, body)
		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, "DRAFT_GENERATION_FAILED", env.Error.Code)
		assert.Equal(t, "quality", env.Error.Details["tier"])
	})

	t.Run("group without members", func(t *testing.T) {
		f := newPipelineFixture(t)
		rr, env := postParse(t, newTestRouter(NewHandler(f.svc), true), "nobody-here", body)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "NO_MEMBERS_FOUND", env.Error.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		f := newPipelineFixture(t)
		rr, _ := postParse(t, newTestRouter(NewHandler(f.svc), true), f.groupID, `{`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr, _ = postParse(t, newTestRouter(NewHandler(f.svc), true), f.groupID, `{"description": " "}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("caller outside the group", func(t *testing.T) {
		f := newPipelineFixture(t)
		req := httptest.NewRequest(http.MethodPost, "/groups/"+f.groupID+"/expenses/parse", bytes.NewBufferString(body))
		req.Header.Set("X-Test-User-ID", "u-stranger")
		rr := httptest.NewRecorder()
		newTestRouter(NewHandler(f.svc), true).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "FORBIDDEN")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newPipelineFixture(t)
		rr, _ := postParse(t, newTestRouter(NewHandler(f.svc), false), f.groupID, body)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestHandlerGetByIDNotFound(t *testing.T) {
	f := newPipelineFixture(t)
	router := newTestRouter(NewHandler(f.svc), true)

	req := httptest.NewRequest(http.MethodGet, "/expenses/missing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
