package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuronotes-backend/domain"
	apperrors "neuronotes-backend/pkg/errors"
)

func (e *testEnv) createTag(t *testing.T, userID uuid.UUID, name string) *domain.NoteTag {
	t.Helper()

	tag, err := e.tags.Create(context.Background(), userID, CreateTagInput{Name: name})
	require.NoError(t, err)
	return tag
}

func TestNoteCreateWithTags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	topic := env.createTopic(t, alice.ID, "Graphs")
	tag := env.createTag(t, alice.ID, "go")

	note, err := env.notes.Create(ctx, alice.ID, CreateNoteInput{
		TopicID: topic.ID,
		Content: "adjacency lists",
		TagIDs:  []uuid.UUID{tag.ID},
	})
	require.NoError(t, err)
	require.Len(t, note.Tags, 1)
	assert.Equal(t, "go", note.Tags[0].Name)
}

func TestNoteCreateRejectsForeignTag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	topic := env.createTopic(t, alice.ID, "Graphs")
	theirs := env.createTag(t, bob.ID, "rust")

	_, err := env.notes.Create(ctx, alice.ID, CreateNoteInput{
		TopicID: topic.ID,
		Content: "x",
		TagIDs:  []uuid.UUID{theirs.ID},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTags(err))

	// The bad tag aborts before the note is written.
	_, err = env.notes.ListByTopic(ctx, topic.ID, alice.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestNoteCreateRejectsForeignTopic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	topic := env.createTopic(t, alice.ID, "Graphs")

	_, err := env.notes.Create(ctx, bob.ID, CreateNoteInput{
		TopicID: topic.ID,
		Content: "x",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestNoteListByTopic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	topic := env.createTopic(t, alice.ID, "Graphs")

	// A missing topic and an empty topic are both NotFound, with
	// different subjects.
	_, err := env.notes.ListByTopic(ctx, uuid.New(), alice.ID)
	require.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Topic not found.", apperrors.GetAppError(err).Message)

	_, err = env.notes.ListByTopic(ctx, topic.ID, alice.ID)
	require.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Notes not found.", apperrors.GetAppError(err).Message)

	_, err = env.notes.Create(ctx, alice.ID, CreateNoteInput{TopicID: topic.ID, Content: "x"})
	require.NoError(t, err)

	notes, err := env.notes.ListByTopic(ctx, topic.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestNoteUpdateTagSemantics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	topic := env.createTopic(t, alice.ID, "Graphs")
	t1 := env.createTag(t, alice.ID, "go")
	t2 := env.createTag(t, alice.ID, "db")

	note, err := env.notes.Create(ctx, alice.ID, CreateNoteInput{
		TopicID: topic.ID,
		Content: "x",
		TagIDs:  []uuid.UUID{t1.ID},
	})
	require.NoError(t, err)

	// A nil tag field leaves the set alone.
	content := "y"
	updated, err := env.notes.Update(ctx, note.ID, alice.ID, UpdateNoteInput{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "y", updated.Content)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "go", updated.Tags[0].Name)

	// A non-empty field validates and replaces.
	updated, err = env.notes.Update(ctx, note.ID, alice.ID, UpdateNoteInput{
		TagIDs: &[]uuid.UUID{t2.ID},
	})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "db", updated.Tags[0].Name)

	// An empty non-nil field clears the set.
	updated, err = env.notes.Update(ctx, note.ID, alice.ID, UpdateNoteInput{
		TagIDs: &[]uuid.UUID{},
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)

	// An unknown tag id fails the whole patch.
	_, err = env.notes.Update(ctx, note.ID, alice.ID, UpdateNoteInput{
		TagIDs: &[]uuid.UUID{uuid.New()},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTags(err))
}

func TestNoteDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	topic := env.createTopic(t, alice.ID, "Graphs")

	note, err := env.notes.Create(ctx, alice.ID, CreateNoteInput{TopicID: topic.ID, Content: "x"})
	require.NoError(t, err)

	err = env.notes.Delete(ctx, note.ID, bob.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, env.notes.Delete(ctx, note.ID, alice.ID))

	_, err = env.notes.Get(ctx, note.ID, alice.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
