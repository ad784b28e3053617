package sqlstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"neuronotes-backend/application/ports"
	"neuronotes-backend/domain"
	apperrors "neuronotes-backend/pkg/errors"
)

// TopicEdgeRepository is the gorm-backed edge store. An edge's existence
// is fully determined by its (source, target) pair: validation happens
// here rather than in the services so every write path shares it.
type TopicEdgeRepository struct {
	db *gorm.DB
}

// NewTopicEdgeRepository creates an edge repository.
func NewTopicEdgeRepository(db *gorm.DB) *TopicEdgeRepository {
	return &TopicEdgeRepository{db: db}
}

var _ ports.TopicEdgeRepository = (*TopicEdgeRepository)(nil)

func (r *TopicEdgeRepository) Create(ctx context.Context, edge *domain.TopicEdge) error {
	if err := validateEdge(r.db.WithContext(ctx), edge); err != nil {
		return err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.TopicEdge{}).
		Where("source = ? AND target = ?", edge.Source, edge.Target).
		Count(&count).Error
	if err != nil {
		return apperrors.NewInternal("failed to check edge").WithCause(err)
	}
	if count > 0 {
		return apperrors.NewAlreadyExists("Edge already exists.")
	}

	if edge.ID == uuid.Nil {
		edge.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(edge).Error; err != nil {
		// Constraint backstop for a concurrent create of the same pair.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewAlreadyExists("Edge already exists.")
		}
		return apperrors.NewInternal("failed to create edge").WithCause(err)
	}
	return nil
}

// CreateMany creates a batch of edges atomically. Unlike Create, an edge
// whose (source, target) pair already exists is skipped rather than
// rejected; an invalid edge still aborts the whole batch.
func (r *TopicEdgeRepository) CreateMany(ctx context.Context, edges []domain.TopicEdge) ([]domain.TopicEdge, error) {
	var created []domain.TopicEdge
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = createEdgesTx(tx, edges)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *TopicEdgeRepository) GetBySource(ctx context.Context, topicID uuid.UUID) ([]domain.TopicEdge, error) {
	var edges []domain.TopicEdge
	err := r.db.WithContext(ctx).Where("source = ?", topicID).Find(&edges).Error
	if err != nil {
		return nil, apperrors.NewInternal("failed to list edges").WithCause(err)
	}
	return edges, nil
}

func (r *TopicEdgeRepository) GetByTarget(ctx context.Context, topicID uuid.UUID) ([]domain.TopicEdge, error) {
	var edges []domain.TopicEdge
	err := r.db.WithContext(ctx).Where("target = ?", topicID).Find(&edges).Error
	if err != nil {
		return nil, apperrors.NewInternal("failed to list edges").WithCause(err)
	}
	return edges, nil
}

func (r *TopicEdgeRepository) GetAllForTopic(ctx context.Context, topicID uuid.UUID) ([]domain.TopicEdge, error) {
	var edges []domain.TopicEdge
	err := r.db.WithContext(ctx).Where("source = ? OR target = ?", topicID, topicID).Find(&edges).Error
	if err != nil {
		return nil, apperrors.NewInternal("failed to list edges").WithCause(err)
	}
	return edges, nil
}

func (r *TopicEdgeRepository) DeleteBySourceTarget(ctx context.Context, source, target uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.TopicEdge{}, "source = ? AND target = ?", source, target)
	if res.Error != nil {
		return false, apperrors.NewInternal("failed to delete edge").WithCause(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteOutgoingForTopic reports success even when no edges existed.
func (r *TopicEdgeRepository) DeleteOutgoingForTopic(ctx context.Context, topicID uuid.UUID) (bool, error) {
	err := r.db.WithContext(ctx).Delete(&domain.TopicEdge{}, "source = ?", topicID).Error
	if err != nil {
		return false, apperrors.NewInternal("failed to delete edges").WithCause(err)
	}
	return true, nil
}

func (r *TopicEdgeRepository) DeleteForTopic(ctx context.Context, topicID uuid.UUID) (bool, error) {
	err := r.db.WithContext(ctx).Delete(&domain.TopicEdge{}, "source = ? OR target = ?", topicID, topicID).Error
	if err != nil {
		return false, apperrors.NewInternal("failed to delete edges").WithCause(err)
	}
	return true, nil
}

// ReplaceOutgoing swaps the full outgoing edge set of a topic in one
// transaction. If any replacement edge is invalid the prior set survives
// untouched.
func (r *TopicEdgeRepository) ReplaceOutgoing(ctx context.Context, topicID uuid.UUID, edges []domain.TopicEdge) ([]domain.TopicEdge, error) {
	var created []domain.TopicEdge
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.TopicEdge{}, "source = ?", topicID).Error; err != nil {
			return apperrors.NewInternal("failed to delete edges").WithCause(err)
		}
		var err error
		created, err = createEdgesTx(tx, edges)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// validateEdge enforces the graph invariants shared by every write path:
// no self-loops, and both endpoints must be existing topics. Self-loops
// are rejected before the endpoint lookup so createEdge(a, a) fails the
// same way whether or not a exists.
func validateEdge(tx *gorm.DB, edge *domain.TopicEdge) error {
	if edge.Source == edge.Target {
		return apperrors.NewInvalidEdge("Invalid edge.")
	}

	var count int64
	err := tx.Model(&domain.Topic{}).
		Where("id IN ?", []uuid.UUID{edge.Source, edge.Target}).
		Count(&count).Error
	if err != nil {
		return apperrors.NewInternal("failed to check edge endpoints").WithCause(err)
	}
	if count != 2 {
		return apperrors.NewInvalidEdge("Invalid edge.")
	}
	return nil
}

func createEdgesTx(tx *gorm.DB, edges []domain.TopicEdge) ([]domain.TopicEdge, error) {
	created := make([]domain.TopicEdge, 0, len(edges))
	seen := make(map[[2]uuid.UUID]bool, len(edges))

	for i := range edges {
		edge := edges[i]
		if err := validateEdge(tx, &edge); err != nil {
			return nil, err
		}

		pair := [2]uuid.UUID{edge.Source, edge.Target}
		if seen[pair] {
			continue
		}

		var count int64
		err := tx.Model(&domain.TopicEdge{}).
			Where("source = ? AND target = ?", edge.Source, edge.Target).
			Count(&count).Error
		if err != nil {
			return nil, apperrors.NewInternal("failed to check edge").WithCause(err)
		}
		if count > 0 {
			continue
		}

		if edge.ID == uuid.Nil {
			edge.ID = uuid.New()
		}
		if err := tx.Create(&edge).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.NewAlreadyExists("Edge already exists.")
			}
			return nil, apperrors.NewInternal("failed to create edge").WithCause(err)
		}

		seen[pair] = true
		created = append(created, edge)
	}

	return created, nil
}
