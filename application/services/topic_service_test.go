package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "neuronotes-backend/pkg/errors"
)

func TestTopicCreateWithRelatedTopics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	graphs := env.createTopic(t, alice.ID, "Graphs")
	trees := env.createTopic(t, alice.ID, "Trees")

	topic, err := env.topics.Create(ctx, alice.ID, CreateTopicInput{
		Title:         "Traversal",
		RelatedTopics: []uuid.UUID{graphs.ID, trees.ID},
		RelationTypes: []string{"applies-to"},
	})
	require.NoError(t, err)

	refs, err := env.edges.ListOutgoing(ctx, topic.ID)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	require.NotNil(t, refs[0].RelationType)
	assert.Equal(t, "applies-to", *refs[0].RelationType)
	assert.Nil(t, refs[1].RelationType)
}

func TestTopicCreateSurfacesBadRelatedTopic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")

	_, err := env.topics.Create(ctx, alice.ID, CreateTopicInput{
		Title:         "Traversal",
		RelatedTopics: []uuid.UUID{uuid.New()},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidEdge(err))
}

func TestTopicTitleUniquePerOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	env.createTopic(t, alice.ID, "Graphs")

	_, err := env.topics.Create(ctx, alice.ID, CreateTopicInput{Title: "Graphs"})
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err))

	// Another owner can reuse the title.
	_, err = env.topics.Create(ctx, bob.ID, CreateTopicInput{Title: "Graphs"})
	assert.NoError(t, err)
}

func TestTopicListEmptyIsDistinct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")

	_, err := env.topics.List(ctx, alice.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsEmpty(err))

	env.createTopic(t, alice.ID, "Graphs")
	topics, err := env.topics.List(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, topics, 1)
}

func TestTopicUpdateEdgeSemantics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	a := env.createTopic(t, alice.ID, "A")
	b := env.createTopic(t, alice.ID, "B")
	c := env.createTopic(t, alice.ID, "C")

	_, err := env.topics.Update(ctx, a.ID, alice.ID, UpdateTopicInput{
		RelatedTopics: &[]uuid.UUID{b.ID},
	})
	require.NoError(t, err)

	// A nil related-topics field leaves the edge set alone.
	title := "A renamed"
	updated, err := env.topics.Update(ctx, a.ID, alice.ID, UpdateTopicInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "A renamed", updated.Title)

	refs, err := env.edges.ListOutgoing(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, b.ID, refs[0].TargetTopicID)

	// A non-nil field replaces the set wholesale.
	_, err = env.topics.Update(ctx, a.ID, alice.ID, UpdateTopicInput{
		RelatedTopics: &[]uuid.UUID{c.ID},
	})
	require.NoError(t, err)

	refs, err = env.edges.ListOutgoing(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, c.ID, refs[0].TargetTopicID)

	// An empty non-nil field clears every outgoing edge.
	_, err = env.topics.Update(ctx, a.ID, alice.ID, UpdateTopicInput{
		RelatedTopics: &[]uuid.UUID{},
	})
	require.NoError(t, err)

	refs, err = env.edges.ListOutgoing(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestTopicUpdateScopedByOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	topic := env.createTopic(t, alice.ID, "Graphs")

	title := "Hijacked"
	_, err := env.topics.Update(ctx, topic.ID, bob.ID, UpdateTopicInput{Title: &title})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTopicDeleteRemovesEdges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.registerUser(t, "alice")
	a := env.createTopic(t, alice.ID, "A")
	b := env.createTopic(t, alice.ID, "B")

	_, err := env.edges.Create(ctx, CreateEdgeInput{Source: a.ID, Target: b.ID})
	require.NoError(t, err)
	_, err = env.edges.Create(ctx, CreateEdgeInput{Source: b.ID, Target: a.ID})
	require.NoError(t, err)

	require.NoError(t, env.topics.Delete(ctx, a.ID, alice.ID))

	_, err = env.topics.Get(ctx, a.ID, alice.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// B has no surviving edges in either direction.
	refs, err := env.edges.ListOutgoing(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, refs)
}
