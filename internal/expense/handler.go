package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/quicksplit/internal/draft"
	"github.com/fkhayef/quicksplit/internal/group"
	"github.com/fkhayef/quicksplit/pkg/middleware"
	"github.com/fkhayef/quicksplit/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /expenses
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetByID)

	return r
}

// GroupRoutes returns the router mounted under /groups/{id}/expenses
func (h *Handler) GroupRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListByGroup)
	r.Post("/parse", h.CreateFromDescription)

	return r
}

// CreateFromDescription handles POST /groups/{id}/expenses/parse
// @Summary      Create an expense from a description
// @Description  Extract an expense from free text, resolve its members against the group roster and store it
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        request body CreateFromDescriptionRequest true "Free-text description"
// @Success      201 {object} response.APIResponse{data=CreateFromDescriptionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Failure      502 {object} response.APIResponse
// @Router       /groups/{id}/expenses/parse [post]
func (h *Handler) CreateFromDescription(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	groupID := chi.URLParam(r, "id")

	var req CreateFromDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	expenseID, err := h.service.CreateExpenseFromDescription(r.Context(), groupID, req.Description, userID)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, &CreateFromDescriptionResponse{ExpenseID: expenseID})
}

// writePipelineError maps pipeline failures to HTTP responses.
func writePipelineError(w http.ResponseWriter, err error) {
	var (
		rejection Rejection
		genErr    *draft.GenerationError
		noMembers *group.NoMembersFoundError
		persist   *PersistenceError
	)

	switch {
	case errors.Is(err, ErrEmptyText):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrNotGroupMember):
		response.Forbidden(w, err.Error())
	case errors.As(err, &noMembers):
		response.Error(w, http.StatusNotFound, "NO_MEMBERS_FOUND", err.Error())
	case errors.As(err, &genErr):
		response.ErrorWithDetails(w, http.StatusBadGateway, "DRAFT_GENERATION_FAILED",
			"Could not read the expense description, please try again",
			map[string]any{"tier": string(genErr.Tier)})
	case errors.As(err, &rejection):
		response.ErrorWithDetails(w, http.StatusUnprocessableEntity, rejection.Code(), rejection.Error(), rejection.Details())
	case errors.As(err, &persist):
		response.Error(w, http.StatusInternalServerError, "PERSISTENCE_FAILED", "Failed to save expense")
	default:
		response.InternalError(w, "Failed to create expense")
	}
}

// GetByID handles GET /expenses/{id}
// @Summary      Get expense by ID
// @Description  Get an expense with its participants and what each owes the payer
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	expense, err := h.service.GetExpenseByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get expense")
		return
	}

	response.JSON(w, http.StatusOK, expense.ToResponse())
}

// ListByGroup handles GET /groups/{id}/expenses
// @Summary      List group expenses
// @Description  Get a paginated list of a group's expenses, newest first
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Router       /groups/{id}/expenses [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	expenses, total, err := h.service.ListExpensesByGroup(r.Context(), groupID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	expenseResponses := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		expenseResponses[i] = e.ToResponse()
	}

	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	response.JSONWithMeta(w, http.StatusOK, expenseResponses, meta)
}
