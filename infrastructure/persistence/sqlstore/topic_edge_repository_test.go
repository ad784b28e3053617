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

func TestEdgeCreateRejectsSelfLoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicEdgeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	a := createTestTopic(t, db, alice.ID, "A")

	// Self-loop on an existing topic.
	err := repo.Create(ctx, &domain.TopicEdge{Source: a.ID, Target: a.ID})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidEdge(err))

	// Self-loop on a topic that does not exist fails the same way.
	ghost := uuid.New()
	err = repo.Create(ctx, &domain.TopicEdge{Source: ghost, Target: ghost})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidEdge(err))
}

func TestEdgeCreateRejectsMissingEndpoint(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicEdgeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	a := createTestTopic(t, db, alice.ID, "A")

	err := repo.Create(ctx, &domain.TopicEdge{Source: a.ID, Target: uuid.New()})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidEdge(err))
}

func TestEdgeCreateDuplicateConflicts(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicEdgeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	a := createTestTopic(t, db, alice.ID, "A")
	b := createTestTopic(t, db, alice.ID, "B")

	require.NoError(t, repo.Create(ctx, &domain.TopicEdge{Source: a.ID, Target: b.ID}))

	err := repo.Create(ctx, &domain.TopicEdge{Source: a.ID, Target: b.ID})
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err))

	// The reverse direction is a different edge.
	require.NoError(t, repo.Create(ctx, &domain.TopicEdge{Source: b.ID, Target: a.ID}))
}

func TestEdgeCreateManySkipsDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicEdgeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	a := createTestTopic(t, db, alice.ID, "A")
	b := createTestTopic(t, db, alice.ID, "B")
	c := createTestTopic(t, db, alice.ID, "C")

	// Duplicate within the batch collapses to one stored edge.
	created, err := repo.CreateMany(ctx, []domain.TopicEdge{
		{Source: a.ID, Target: b.ID},
		{Source: a.ID, Target: b.ID},
		{Source: a.ID, Target: c.ID},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	// Duplicate against stored state is skipped too, not an error.
	created, err = repo.CreateMany(ctx, []domain.TopicEdge{
		{Source: a.ID, Target: b.ID},
		{Source: b.ID, Target: c.ID},
	})
	require.NoError(t, err)
	assert.Len(t, created, 1)

	all, err := repo.GetBySource(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEdgeCreateManyAtomicOnInvalid(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicEdgeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	a := createTestTopic(t, db, alice.ID, "A")
	b := createTestTopic(t, db, alice.ID, "B")

	_, err := repo.CreateMany(ctx, []domain.TopicEdge{
		{Source: a.ID, Target: b.ID},
		{Source: a.ID, Target: uuid.New()},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidEdge(err))

	// The valid edge before the invalid one must not survive.
	edges, err := repo.GetBySource(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestEdgeReplaceOutgoing(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicEdgeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	a := createTestTopic(t, db, alice.ID, "A")
	b := createTestTopic(t, db, alice.ID, "B")
	c := createTestTopic(t, db, alice.ID, "C")

	require.NoError(t, repo.Create(ctx, &domain.TopicEdge{Source: a.ID, Target: b.ID}))
	require.NoError(t, repo.Create(ctx, &domain.TopicEdge{Source: c.ID, Target: a.ID}))

	created, err := repo.ReplaceOutgoing(ctx, a.ID, []domain.TopicEdge{
		{Source: a.ID, Target: c.ID},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	outgoing, err := repo.GetBySource(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, c.ID, outgoing[0].Target)

	// Incoming edges are untouched by the outgoing replace.
	incoming, err := repo.GetByTarget(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, incoming, 1)
}

func TestEdgeReplaceOutgoingRollsBackOnInvalid(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicEdgeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	a := createTestTopic(t, db, alice.ID, "A")
	b := createTestTopic(t, db, alice.ID, "B")

	require.NoError(t, repo.Create(ctx, &domain.TopicEdge{Source: a.ID, Target: b.ID}))

	_, err := repo.ReplaceOutgoing(ctx, a.ID, []domain.TopicEdge{
		{Source: a.ID, Target: uuid.New()},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidEdge(err))

	// The prior set survives, deletes included.
	outgoing, err := repo.GetBySource(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, b.ID, outgoing[0].Target)
}

func TestEdgeReplaceOutgoingWithEmptyListClears(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicEdgeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	a := createTestTopic(t, db, alice.ID, "A")
	b := createTestTopic(t, db, alice.ID, "B")

	require.NoError(t, repo.Create(ctx, &domain.TopicEdge{Source: a.ID, Target: b.ID}))

	created, err := repo.ReplaceOutgoing(ctx, a.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, created)

	outgoing, err := repo.GetBySource(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, outgoing)
}

func TestEdgeDeletes(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicEdgeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	a := createTestTopic(t, db, alice.ID, "A")
	b := createTestTopic(t, db, alice.ID, "B")
	c := createTestTopic(t, db, alice.ID, "C")

	require.NoError(t, repo.Create(ctx, &domain.TopicEdge{Source: a.ID, Target: b.ID}))
	require.NoError(t, repo.Create(ctx, &domain.TopicEdge{Source: c.ID, Target: a.ID}))

	deleted, err := repo.DeleteBySourceTarget(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteBySourceTarget(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Deleting outgoing edges reports success even with none left.
	ok, err := repo.DeleteOutgoingForTopic(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Both directions go on a full delete.
	ok, err = repo.DeleteForTopic(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := repo.GetAllForTopic(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, all)
}
