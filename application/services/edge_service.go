package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"neuronotes-backend/application/ports"
	"neuronotes-backend/domain"
	apperrors "neuronotes-backend/pkg/errors"
)

// CreateEdgeInput is the explicit edge creation payload.
type CreateEdgeInput struct {
	Source       uuid.UUID `json:"source" validate:"required"`
	Target       uuid.UUID `json:"target" validate:"required"`
	RelationType *string   `json:"relation_type,omitempty" validate:"omitempty,max=50"`
}

// EdgeRef is the outgoing-edge view returned by the edges listing.
type EdgeRef struct {
	TargetTopicID uuid.UUID `json:"target_topic_id"`
	RelationType  *string   `json:"relation_type"`
}

// EdgeService implements the explicit edge use cases, separate from the
// batch paths embedded in topic create/update.
type EdgeService struct {
	edges  ports.TopicEdgeRepository
	logger *zap.Logger
}

// NewEdgeService creates an edge service.
func NewEdgeService(edges ports.TopicEdgeRepository, logger *zap.Logger) *EdgeService {
	return &EdgeService{edges: edges, logger: logger}
}

// Create adds a single edge. Unlike the batch paths, a duplicate pair
// here is a conflict, not a skip.
func (s *EdgeService) Create(ctx context.Context, input CreateEdgeInput) (*domain.TopicEdge, error) {
	edge := &domain.TopicEdge{
		Source:       input.Source,
		Target:       input.Target,
		RelationType: input.RelationType,
	}
	if err := s.edges.Create(ctx, edge); err != nil {
		return nil, err
	}

	s.logger.Info("edge created",
		zap.String("source", input.Source.String()),
		zap.String("target", input.Target.String()),
	)
	return edge, nil
}

// ListOutgoing returns the topic's outgoing edges as target references.
func (s *EdgeService) ListOutgoing(ctx context.Context, topicID uuid.UUID) ([]EdgeRef, error) {
	edges, err := s.edges.GetBySource(ctx, topicID)
	if err != nil {
		return nil, err
	}
	refs := make([]EdgeRef, 0, len(edges))
	for _, edge := range edges {
		refs = append(refs, EdgeRef{
			TargetTopicID: edge.Target,
			RelationType:  edge.RelationType,
		})
	}
	return refs, nil
}

// Delete removes the edge identified by its (source, target) pair.
func (s *EdgeService) Delete(ctx context.Context, source, target uuid.UUID) error {
	deleted, err := s.edges.DeleteBySourceTarget(ctx, source, target)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("Edge")
	}
	return nil
}
