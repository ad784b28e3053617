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

// TopicRepository is the gorm-backed topic store. Every query carries the
// owner filter; a topic owned by someone else looks exactly like a missing
// one.
type TopicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a topic repository.
func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

var _ ports.TopicRepository = (*TopicRepository)(nil)

func (r *TopicRepository) Create(ctx context.Context, topic *domain.Topic) error {
	if topic.ID == uuid.Nil {
		topic.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(topic).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewAlreadyExists("Topic already exists.")
		}
		return apperrors.NewInternal("failed to create topic").WithCause(err)
	}
	return nil
}

func (r *TopicRepository) GetByID(ctx context.Context, topicID, userID uuid.UUID) (*domain.Topic, error) {
	var topic domain.Topic
	err := r.db.WithContext(ctx).First(&topic, "id = ? AND user_id = ?", topicID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Topic")
		}
		return nil, apperrors.NewInternal("failed to load topic").WithCause(err)
	}
	return &topic, nil
}

func (r *TopicRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error) {
	var topics []domain.Topic
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&topics).Error
	if err != nil {
		return nil, apperrors.NewInternal("failed to list topics").WithCause(err)
	}
	return topics, nil
}

func (r *TopicRepository) Update(ctx context.Context, topic *domain.Topic) error {
	if err := r.db.WithContext(ctx).Save(topic).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewAlreadyExists("Topic already exists.")
		}
		return apperrors.NewInternal("failed to update topic").WithCause(err)
	}
	return nil
}

func (r *TopicRepository) Delete(ctx context.Context, topicID, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Topic{}, "id = ? AND user_id = ?", topicID, userID)
	if res.Error != nil {
		return false, apperrors.NewInternal("failed to delete topic").WithCause(res.Error)
	}
	return res.RowsAffected > 0, nil
}
