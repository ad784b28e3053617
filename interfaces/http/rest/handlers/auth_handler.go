package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"neuronotes-backend/application/services"
	"neuronotes-backend/pkg/common"
	apperrors "neuronotes-backend/pkg/errors"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse is the login view: account fields plus a fresh token.
type LoginResponse struct {
	UserResponse
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	auth   *services.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(auth *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			common.RespondError(w, http.StatusConflict, "User already exists with that email.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusCreated, "User created successfully", UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	result, err := h.auth.Login(r.Context(), req)
	if err != nil {
		if apperrors.IsInvalidCredentials(err) {
			common.RespondError(w, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Login successfully", LoginResponse{
		UserResponse: UserResponse{
			ID:        result.User.ID,
			Username:  result.User.Username,
			Email:     result.User.Email,
			CreatedAt: result.User.CreatedAt,
		},
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
	})
}
