package services

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"neuronotes-backend/application/ports"
	"neuronotes-backend/domain"
	"neuronotes-backend/pkg/auth"
	apperrors "neuronotes-backend/pkg/errors"
)

var (
	emailPattern         = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameCharsPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	usernameStartPattern = regexp.MustCompile(`^[a-zA-Z0-9]`)
	passwordUpperPattern = regexp.MustCompile(`[A-Z]`)
	passwordLowerPattern = regexp.MustCompile(`[a-z]`)
	passwordDigitPattern = regexp.MustCompile(`\d`)
	passwordSpecPattern  = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// RegisterInput is the registration payload before normalization.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is a resolved account plus a fresh access token.
type LoginResult struct {
	User        *domain.User
	AccessToken string
}

// AuthService implements registration and login. Field validation runs
// in full before any persistence so the caller gets every problem in
// one response.
type AuthService struct {
	users  ports.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
	logger *zap.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(users ports.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register validates and normalizes the payload, then creates the user.
// A taken email surfaces as AlreadyExists whether caught by the
// pre-insert lookup or by the unique constraint.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	var fields []apperrors.FieldError
	fields = append(fields, validateUsername(username)...)
	fields = append(fields, validateEmail(email)...)
	fields = append(fields, validatePassword(input.Password)...)
	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields)
	}

	username = strings.ToLower(username)
	email = strings.ToLower(email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewAlreadyExists("User already exists with that email.")
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperrors.NewInternal("failed to hash password").WithCause(err)
	}

	user := &domain.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("userID", user.ID.String()))
	return user, nil
}

// Login checks the credentials and issues a token. Unknown email and
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, err
	}

	if !s.hasher.Verify(input.Password, user.HashedPassword) {
		return nil, apperrors.NewInvalidCredentials()
	}

	token, err := s.tokens.Generate(user.ID.String(), user.Username, user.Email)
	if err != nil {
		return nil, apperrors.NewInternal("failed to issue token").WithCause(err)
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}

func validateUsername(username string) []apperrors.FieldError {
	var fields []apperrors.FieldError
	if len(username) < 3 {
		fields = append(fields, apperrors.FieldError{Field: "username", Message: "Username must be at least 3 characters long"})
	}
	if len(username) > 50 {
		fields = append(fields, apperrors.FieldError{Field: "username", Message: "Username must be no more than 50 characters long"})
	}
	if username != "" && !usernameCharsPattern.MatchString(username) {
		fields = append(fields, apperrors.FieldError{Field: "username", Message: "Username can only contain letters, numbers, underscores, and hyphens"})
	}
	if username != "" && !usernameStartPattern.MatchString(username) {
		fields = append(fields, apperrors.FieldError{Field: "username", Message: "Username must start with a letter or number"})
	}
	return fields
}

func validateEmail(email string) []apperrors.FieldError {
	if !emailPattern.MatchString(email) {
		return []apperrors.FieldError{{Field: "email", Message: "Invalid email format"}}
	}
	return nil
}

func validatePassword(password string) []apperrors.FieldError {
	var fields []apperrors.FieldError
	if len(password) < 8 {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "Password must be at least 8 characters long"})
	}
	if len(password) > 128 {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "Password must be no more than 128 characters long"})
	}
	if !passwordUpperPattern.MatchString(password) {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "Password must contain at least one uppercase letter"})
	}
	if !passwordLowerPattern.MatchString(password) {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "Password must contain at least one lowercase letter"})
	}
	if !passwordDigitPattern.MatchString(password) {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "Password must contain at least one number"})
	}
	if !passwordSpecPattern.MatchString(password) {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "Password must contain at least one special character"})
	}
	return fields
}
