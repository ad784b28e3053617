package sqlstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"neuronotes-backend/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *domain.User {
	t.Helper()

	user := &domain.User{
		Username:       name,
		Email:          name + "@example.com",
		HashedPassword: "x",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createTestTopic(t *testing.T, db *gorm.DB, userID uuid.UUID, title string) *domain.Topic {
	t.Helper()

	topic := &domain.Topic{UserID: userID, Title: title}
	require.NoError(t, NewTopicRepository(db).Create(context.Background(), topic))
	return topic
}
