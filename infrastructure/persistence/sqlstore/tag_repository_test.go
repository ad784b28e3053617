package sqlstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuronotes-backend/domain"
	apperrors "neuronotes-backend/pkg/errors"
)

func TestTagCreateUniquePerOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, &domain.NoteTag{UserID: alice.ID, Name: "go"}))

	err := repo.Create(ctx, &domain.NoteTag{UserID: alice.ID, Name: "go"})
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err))

	require.NoError(t, repo.Create(ctx, &domain.NoteTag{UserID: bob.ID, Name: "go"}))
}

func TestTagLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	tag := createTestTag(t, db, alice.ID, "go")

	got, err := repo.GetByID(ctx, tag.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "go", got.Name)

	_, err = repo.GetByID(ctx, tag.ID, bob.ID)
	assert.True(t, apperrors.IsNotFound(err))

	got, err = repo.GetByName(ctx, "go", alice.ID)
	require.NoError(t, err)
	assert.Equal(t, tag.ID, got.ID)

	_, err = repo.GetByName(ctx, "go", bob.ID)
	assert.True(t, apperrors.IsNotFound(err))

	tags, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestTagDeleteCleansAssociations(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	notes := NewNoteRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	topic := createTestTopic(t, db, alice.ID, "Graphs")
	tag := createTestTag(t, db, alice.ID, "go")

	note := &domain.Note{TopicID: topic.ID, UserID: alice.ID, Content: "x"}
	require.NoError(t, notes.Create(ctx, note))
	require.NoError(t, notes.SetTags(ctx, note.ID, []uuid.UUID{tag.ID}))

	deleted, err := repo.Delete(ctx, tag.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The association row cascades with the tag; the note survives.
	remaining, err := notes.GetTags(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = notes.GetByID(ctx, note.ID, alice.ID)
	assert.NoError(t, err)
}
