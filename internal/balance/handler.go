package balance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitledger/pkg/response"
)

// Handler handles HTTP requests for balance views
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for balance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/groups/{groupId}", h.GetGroupBalances)
	r.Get("/users/{userId}", h.GetUserBalances)

	return r
}

// GetGroupBalances handles GET /balances/groups/{groupId}
// @Summary      Get group balances
// @Description  Net who-owes-whom balances of a group, one per pair of users, sorted by debtor then creditor
// @Tags         balances
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]Balance}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /balances/groups/{groupId} [get]
func (h *Handler) GetGroupBalances(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	balances, err := h.service.GroupBalances(r.Context(), groupID)
	if err != nil {
		WriteError(w, err, "Failed to compute group balances")
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// GetUserBalances handles GET /balances/users/{userId}
// @Summary      Get user balances
// @Description  Balances involving a user, grouped by group; groups without any are omitted
// @Tags         balances
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200 {object} response.APIResponse{data=[]UserGroupBalances}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /balances/users/{userId} [get]
func (h *Handler) GetUserBalances(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	views, err := h.service.UserBalances(r.Context(), userID)
	if err != nil {
		WriteError(w, err, "Failed to compute user balances")
		return
	}

	response.JSON(w, http.StatusOK, views)
}

// WriteError maps an error returned by Service to a response
func WriteError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrGroupNotFound), errors.Is(err, ErrUserNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrDataIntegrity):
		response.DataIntegrity(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}
