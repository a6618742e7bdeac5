package chat

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitledger/internal/balance"
	"github.com/fkhayef/splitledger/pkg/response"
)

// Handler handles HTTP requests for chat context
type Handler struct {
	service *Service
}

// NewHandler creates a new chat handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for chat endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/context", h.GetContext)

	return r
}

// GetContext handles GET /chat/context
// @Summary      Get chat context
// @Description  Read-only snapshot of groups, recent expenses and, when user_id is given, that user's balances
// @Tags         chat
// @Produce      json
// @Param        user_id query int false "User ID"
// @Success      200 {object} response.APIResponse{data=Snapshot}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /chat/context [get]
func (h *Handler) GetContext(w http.ResponseWriter, r *http.Request) {
	var userID *int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid user ID")
			return
		}
		userID = &id
	}

	snapshot, err := h.service.Context(r.Context(), userID)
	if err != nil {
		balance.WriteError(w, err, "Failed to build chat context")
		return
	}

	response.JSON(w, http.StatusOK, snapshot)
}
