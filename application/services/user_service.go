package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"neuronotes-backend/application/ports"
	"neuronotes-backend/domain"
	"neuronotes-backend/pkg/auth"
	apperrors "neuronotes-backend/pkg/errors"
)

// UserService resolves the caller behind a verified token claim. Every
// other service takes the resolved user id as its mandatory owner
// filter, so this is the single entry point for the ownership gate.
type UserService struct {
	users  ports.UserRepository
	logger *zap.Logger
}

// NewUserService creates a user service.
func NewUserService(users ports.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// ResolveCaller loads the user named by the claim. A claim whose user no
// longer exists is Unauthorized, not NotFound: a deleted account must
// not be distinguishable from a bad token.
func (s *UserService) ResolveCaller(ctx context.Context, claims *auth.Claims) (*domain.User, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorized("Unauthorized.")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewUnauthorized("Unauthorized.")
		}
		return nil, err
	}
	return user, nil
}
