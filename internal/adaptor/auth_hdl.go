package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-matcher/internal/dto/request"
	"movie-matcher/internal/usecase"
	"movie-matcher/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, "No input data provided")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			h.log.Warn("Register failed - username taken", zap.String("username", req.Username))
			utils.ResponseMessage(w, http.StatusBadRequest, "Username already exists")
			return
		}
		h.log.Error("Failed to register", zap.Error(err))
		utils.ResponseMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.ResponseMessage(w, http.StatusCreated, "User created successfully")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, "No input data provided")
		return
	}

	// Missing fields fall through to the same uniform rejection as wrong
	// credentials; the response never reveals whether the username exists.
	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid credentials") {
			utils.ResponseMessage(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.log.Error("Failed to login", zap.Error(err))
		utils.ResponseMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}
