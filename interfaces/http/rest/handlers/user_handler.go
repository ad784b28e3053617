package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"neuronotes-backend/application/services"
	"neuronotes-backend/domain"
	"neuronotes-backend/pkg/auth"
	"neuronotes-backend/pkg/common"
)

// UserHandler handles the read-self endpoint.
type UserHandler struct {
	users  *services.UserService
	logger *zap.Logger
}

// NewUserHandler creates a user handler.
func NewUserHandler(users *services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Get handles GET /user/.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Fetched user successfully", UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// resolveCaller runs the ownership gate for authenticated routes: it
// loads the user behind the verified claim and writes the 401 envelope
// itself when resolution fails.
func resolveCaller(w http.ResponseWriter, r *http.Request, users *services.UserService) (*domain.User, bool) {
	claims, err := auth.GetClaimsFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized.", nil)
		return nil, false
	}

	user, err := users.ResolveCaller(r.Context(), claims)
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized.", nil)
		return nil, false
	}
	return user, true
}
