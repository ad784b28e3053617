package ports

import (
	"context"

	"github.com/google/uuid"

	"neuronotes-backend/domain"
)

// UserRepository owns User records.
type UserRepository interface {
	// Create persists a user; duplicate username or email surfaces as
	// AlreadyExists.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TopicRepository owns Topic records, always scoped by owner.
type TopicRepository interface {
	// Create persists a topic; a duplicate (title, owner) pair surfaces
	// as AlreadyExists.
	Create(ctx context.Context, topic *domain.Topic) error
	// GetByID never returns a topic owned by another user; foreign
	// ownership is indistinguishable from nonexistence.
	GetByID(ctx context.Context, topicID, userID uuid.UUID) (*domain.Topic, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error)
	Update(ctx context.Context, topic *domain.Topic) error
	// Delete reports false when the topic does not exist or is not owned
	// by userID. Edge and note cleanup cascades at the storage layer.
	Delete(ctx context.Context, topicID, userID uuid.UUID) (bool, error)
}

// TopicEdgeRepository owns directed edges between topics.
type TopicEdgeRepository interface {
	// Create rejects self-loops and missing endpoints with InvalidEdge
	// and duplicate (source, target) pairs with AlreadyExists.
	Create(ctx context.Context, edge *domain.TopicEdge) error
	// CreateMany processes a batch atomically: any invalid edge aborts
	// the whole batch with InvalidEdge, while duplicates (within the
	// batch or against stored edges) are silently skipped. Returns the
	// edges actually created.
	CreateMany(ctx context.Context, edges []domain.TopicEdge) ([]domain.TopicEdge, error)
	GetBySource(ctx context.Context, topicID uuid.UUID) ([]domain.TopicEdge, error)
	GetByTarget(ctx context.Context, topicID uuid.UUID) ([]domain.TopicEdge, error)
	GetAllForTopic(ctx context.Context, topicID uuid.UUID) ([]domain.TopicEdge, error)
	DeleteBySourceTarget(ctx context.Context, source, target uuid.UUID) (bool, error)
	// DeleteOutgoingForTopic succeeds even when zero edges existed.
	DeleteOutgoingForTopic(ctx context.Context, topicID uuid.UUID) (bool, error)
	// DeleteForTopic removes both outgoing and incoming edges.
	DeleteForTopic(ctx context.Context, topicID uuid.UUID) (bool, error)
	// ReplaceOutgoing deletes every outgoing edge of topicID and creates
	// the given edges in a single transaction. On InvalidEdge nothing is
	// changed, including the deletes.
	ReplaceOutgoing(ctx context.Context, topicID uuid.UUID, edges []domain.TopicEdge) ([]domain.TopicEdge, error)
}

// NoteRepository owns Note records and the note-tag association.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, noteID, userID uuid.UUID) (*domain.Note, error)
	ListByTopic(ctx context.Context, topicID, userID uuid.UUID) ([]domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, noteID, userID uuid.UUID) (bool, error)

	// ValidateTagsBelongToUser reports whether every tag id resolves to a
	// tag owned by userID. An empty input is vacuously true.
	ValidateTagsBelongToUser(ctx context.Context, tagIDs []uuid.UUID, userID uuid.UUID) (bool, error)
	// SetTags replaces the note's whole tag set in one transaction:
	// existing associations are deleted, then one row per tag id is
	// inserted. An empty list clears all tags.
	SetTags(ctx context.Context, noteID uuid.UUID, tagIDs []uuid.UUID) error
	GetTags(ctx context.Context, noteID uuid.UUID) ([]domain.NoteTag, error)
	GetWithTags(ctx context.Context, noteID, userID uuid.UUID) (*domain.NoteWithTags, error)
	ListWithTagsByTopic(ctx context.Context, topicID, userID uuid.UUID) ([]domain.NoteWithTags, error)
}

// TagRepository owns NoteTag records, scoped by owner.
type TagRepository interface {
	// Create persists a tag; a duplicate (name, owner) pair surfaces as
	// AlreadyExists even when the pre-insert lookup raced.
	Create(ctx context.Context, tag *domain.NoteTag) error
	GetByID(ctx context.Context, tagID, userID uuid.UUID) (*domain.NoteTag, error)
	GetByName(ctx context.Context, name string, userID uuid.UUID) (*domain.NoteTag, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.NoteTag, error)
	Update(ctx context.Context, tag *domain.NoteTag) error
	Delete(ctx context.Context, tagID, userID uuid.UUID) (bool, error)
}
