package di

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"neuronotes-backend/application/ports"
	"neuronotes-backend/application/services"
	"neuronotes-backend/infrastructure/config"
	"neuronotes-backend/infrastructure/persistence/sqlstore"
	"neuronotes-backend/interfaces/http/rest"
	"neuronotes-backend/pkg/auth"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	DB      *gorm.DB
	Handler http.Handler
}

// ProvideLogger creates a new logger instance.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDB opens the database and runs migrations.
func ProvideDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := sqlstore.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := sqlstore.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ProvideTokenService creates the JWT token service.
func ProvideTokenService(cfg *config.Config) (*auth.TokenService, error) {
	return auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
}

// ProvidePasswordHasher creates the bcrypt password hasher.
func ProvidePasswordHasher(cfg *config.Config) *auth.PasswordHasher {
	return auth.NewPasswordHasher(cfg.BcryptCost)
}

// ProvideUserRepository creates the user repository.
func ProvideUserRepository(db *gorm.DB) ports.UserRepository {
	return sqlstore.NewUserRepository(db)
}

// ProvideTopicRepository creates the topic repository.
func ProvideTopicRepository(db *gorm.DB) ports.TopicRepository {
	return sqlstore.NewTopicRepository(db)
}

// ProvideTopicEdgeRepository creates the topic edge repository.
func ProvideTopicEdgeRepository(db *gorm.DB) ports.TopicEdgeRepository {
	return sqlstore.NewTopicEdgeRepository(db)
}

// ProvideNoteRepository creates the note repository.
func ProvideNoteRepository(db *gorm.DB) ports.NoteRepository {
	return sqlstore.NewNoteRepository(db)
}

// ProvideTagRepository creates the tag repository.
func ProvideTagRepository(db *gorm.DB) ports.TagRepository {
	return sqlstore.NewTagRepository(db)
}

// ProvideUserService creates the ownership-gate service.
func ProvideUserService(users ports.UserRepository, logger *zap.Logger) *services.UserService {
	return services.NewUserService(users, logger)
}

// ProvideAuthService creates the auth service.
func ProvideAuthService(users ports.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService, logger *zap.Logger) *services.AuthService {
	return services.NewAuthService(users, hasher, tokens, logger)
}

// ProvideTopicService creates the topic service.
func ProvideTopicService(topics ports.TopicRepository, edges ports.TopicEdgeRepository, logger *zap.Logger) *services.TopicService {
	return services.NewTopicService(topics, edges, logger)
}

// ProvideEdgeService creates the edge service.
func ProvideEdgeService(edges ports.TopicEdgeRepository, logger *zap.Logger) *services.EdgeService {
	return services.NewEdgeService(edges, logger)
}

// ProvideNoteService creates the note service.
func ProvideNoteService(notes ports.NoteRepository, topics ports.TopicRepository, logger *zap.Logger) *services.NoteService {
	return services.NewNoteService(notes, topics, logger)
}

// ProvideTagService creates the tag service.
func ProvideTagService(tags ports.TagRepository, logger *zap.Logger) *services.TagService {
	return services.NewTagService(tags, logger)
}

// ProvideRouter creates the configured HTTP handler.
func ProvideRouter(
	cfg *config.Config,
	tokens *auth.TokenService,
	users *services.UserService,
	authn *services.AuthService,
	topics *services.TopicService,
	edges *services.EdgeService,
	notes *services.NoteService,
	tags *services.TagService,
	logger *zap.Logger,
) http.Handler {
	return rest.NewRouter(cfg, tokens, users, authn, topics, edges, notes, tags, logger).Setup()
}
