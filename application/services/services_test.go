package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"neuronotes-backend/domain"
	"neuronotes-backend/infrastructure/persistence/sqlstore"
	"neuronotes-backend/pkg/auth"
)

type testEnv struct {
	db     *gorm.DB
	tokens *auth.TokenService
	auth   *AuthService
	users  *UserService
	topics *TopicService
	edges  *EdgeService
	notes  *NoteService
	tags   *TagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlstore.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlstore.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	logger := zap.NewNop()
	tokens, err := auth.NewTokenService("test-secret", "test", time.Hour)
	require.NoError(t, err)
	hasher := auth.NewPasswordHasher(4)

	userRepo := sqlstore.NewUserRepository(db)
	topicRepo := sqlstore.NewTopicRepository(db)
	edgeRepo := sqlstore.NewTopicEdgeRepository(db)
	noteRepo := sqlstore.NewNoteRepository(db)
	tagRepo := sqlstore.NewTagRepository(db)

	return &testEnv{
		db:     db,
		tokens: tokens,
		auth:   NewAuthService(userRepo, hasher, tokens, logger),
		users:  NewUserService(userRepo, logger),
		topics: NewTopicService(topicRepo, edgeRepo, logger),
		edges:  NewEdgeService(edgeRepo, logger),
		notes:  NewNoteService(noteRepo, topicRepo, logger),
		tags:   NewTagService(tagRepo, logger),
	}
}

func (e *testEnv) registerUser(t *testing.T, name string) *domain.User {
	t.Helper()

	user, err := e.auth.Register(context.Background(), RegisterInput{
		Username: name,
		Email:    name + "@example.com",
		Password: "Sup3r-secret!",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createTopic(t *testing.T, userID uuid.UUID, title string) *domain.Topic {
	t.Helper()

	topic, err := e.topics.Create(context.Background(), userID, CreateTopicInput{Title: title})
	require.NoError(t, err)
	return topic
}
