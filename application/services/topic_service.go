package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"neuronotes-backend/application/ports"
	"neuronotes-backend/domain"
	apperrors "neuronotes-backend/pkg/errors"
)

// CreateTopicInput is the topic creation payload. RelatedTopics and
// RelationTypes are parallel lists: the i-th relation type labels the
// edge to the i-th related topic, missing entries mean no label.
type CreateTopicInput struct {
	Title         string           `json:"title" validate:"required,max=255"`
	Description   *string          `json:"description,omitempty"`
	NodeType      *string          `json:"node_type,omitempty" validate:"omitempty,max=20"`
	Position      *domain.Position `json:"position,omitempty"`
	RelatedTopics []uuid.UUID      `json:"related_topics,omitempty"`
	RelationTypes []string         `json:"relation_types,omitempty"`
}

// UpdateTopicInput is the topic patch payload. Nil fields stay
// untouched. A non-nil RelatedTopics, empty included, replaces the
// topic's whole outgoing edge set.
type UpdateTopicInput struct {
	Title         *string          `json:"title,omitempty" validate:"omitempty,max=255"`
	Description   *string          `json:"description,omitempty"`
	NodeType      *string          `json:"node_type,omitempty" validate:"omitempty,max=20"`
	Position      *domain.Position `json:"position,omitempty"`
	RelatedTopics *[]uuid.UUID     `json:"related_topics,omitempty"`
	RelationTypes []string         `json:"relation_types,omitempty"`
}

// TopicService implements the topic use cases, all scoped to the
// resolved caller.
type TopicService struct {
	topics ports.TopicRepository
	edges  ports.TopicEdgeRepository
	logger *zap.Logger
}

// NewTopicService creates a topic service.
func NewTopicService(topics ports.TopicRepository, edges ports.TopicEdgeRepository, logger *zap.Logger) *TopicService {
	return &TopicService{topics: topics, edges: edges, logger: logger}
}

// Create persists the topic, then batch-creates edges to the related
// topics. An invalid related topic fails the request with InvalidEdge;
// the topic itself stays created, matching the two-step write.
func (s *TopicService) Create(ctx context.Context, userID uuid.UUID, input CreateTopicInput) (*domain.Topic, error) {
	topic := &domain.Topic{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		NodeType:    input.NodeType,
		Position:    input.Position,
	}
	if err := s.topics.Create(ctx, topic); err != nil {
		return nil, err
	}

	if len(input.RelatedTopics) > 0 {
		if _, err := s.edges.CreateMany(ctx, buildEdges(topic.ID, input.RelatedTopics, input.RelationTypes)); err != nil {
			return nil, err
		}
	}

	s.logger.Info("topic created",
		zap.String("topicID", topic.ID.String()),
		zap.String("userID", userID.String()),
	)
	return topic, nil
}

// List returns the caller's topics; zero topics is an Empty condition,
// not a bare empty list.
func (s *TopicService) List(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error) {
	topics, err := s.topics.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, apperrors.NewEmpty("No topics found.")
	}
	return topics, nil
}

func (s *TopicService) Get(ctx context.Context, topicID, userID uuid.UUID) (*domain.Topic, error) {
	return s.topics.GetByID(ctx, topicID, userID)
}

// Update applies the non-nil patch fields and refreshes updated_at.
// When RelatedTopics is non-nil the outgoing edge set is fully
// replaced; when nil, existing edges are left alone.
func (s *TopicService) Update(ctx context.Context, topicID, userID uuid.UUID, input UpdateTopicInput) (*domain.Topic, error) {
	topic, err := s.topics.GetByID(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		topic.Title = *input.Title
	}
	if input.Description != nil {
		topic.Description = input.Description
	}
	if input.NodeType != nil {
		topic.NodeType = input.NodeType
	}
	if input.Position != nil {
		topic.Position = input.Position
	}
	topic.UpdatedAt = time.Now()

	if err := s.topics.Update(ctx, topic); err != nil {
		return nil, err
	}

	if input.RelatedTopics != nil {
		if _, err := s.edges.ReplaceOutgoing(ctx, topic.ID, buildEdges(topic.ID, *input.RelatedTopics, input.RelationTypes)); err != nil {
			return nil, err
		}
	}

	return topic, nil
}

// Delete removes the topic along with every edge touching it. The note
// cascade runs at the storage layer.
func (s *TopicService) Delete(ctx context.Context, topicID, userID uuid.UUID) error {
	if _, err := s.topics.GetByID(ctx, topicID, userID); err != nil {
		return err
	}
	if _, err := s.edges.DeleteForTopic(ctx, topicID); err != nil {
		return err
	}
	deleted, err := s.topics.Delete(ctx, topicID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("Topic")
	}

	s.logger.Info("topic deleted",
		zap.String("topicID", topicID.String()),
		zap.String("userID", userID.String()),
	)
	return nil
}

func buildEdges(source uuid.UUID, targets []uuid.UUID, relationTypes []string) []domain.TopicEdge {
	edges := make([]domain.TopicEdge, 0, len(targets))
	for i, target := range targets {
		var relationType *string
		if i < len(relationTypes) && relationTypes[i] != "" {
			rt := relationTypes[i]
			relationType = &rt
		}
		edges = append(edges, domain.TopicEdge{
			Source:       source,
			Target:       target,
			RelationType: relationType,
		})
	}
	return edges
}
