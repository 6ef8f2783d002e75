package adaptor

import (
	"net/http"
	"strings"

	"movie-matcher/internal/usecase"
	"movie-matcher/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("Failed to list users", zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "An error occurred while fetching users")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, users)
}

// Info handles GET /api/user/info
func (h *UserHandler) Info(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	info, err := h.service.Info(r.Context(), userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.ResponseError(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error("Failed to load user info", zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "An error occurred while fetching user info")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, info)
}
