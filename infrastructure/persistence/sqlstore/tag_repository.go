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

// TagRepository is the gorm-backed tag store, owner-scoped like topics.
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a tag repository.
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

var _ ports.TagRepository = (*TagRepository)(nil)

func (r *TagRepository) Create(ctx context.Context, tag *domain.NoteTag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewAlreadyExists("Tag already exists.")
		}
		return apperrors.NewInternal("failed to create tag").WithCause(err)
	}
	return nil
}

func (r *TagRepository) GetByID(ctx context.Context, tagID, userID uuid.UUID) (*domain.NoteTag, error) {
	var tag domain.NoteTag
	err := r.db.WithContext(ctx).First(&tag, "id = ? AND user_id = ?", tagID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Tag")
		}
		return nil, apperrors.NewInternal("failed to load tag").WithCause(err)
	}
	return &tag, nil
}

func (r *TagRepository) GetByName(ctx context.Context, name string, userID uuid.UUID) (*domain.NoteTag, error) {
	var tag domain.NoteTag
	err := r.db.WithContext(ctx).First(&tag, "name = ? AND user_id = ?", name, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Tag")
		}
		return nil, apperrors.NewInternal("failed to load tag").WithCause(err)
	}
	return &tag, nil
}

func (r *TagRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.NoteTag, error) {
	var tags []domain.NoteTag
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name").Find(&tags).Error
	if err != nil {
		return nil, apperrors.NewInternal("failed to list tags").WithCause(err)
	}
	return tags, nil
}

func (r *TagRepository) Update(ctx context.Context, tag *domain.NoteTag) error {
	if err := r.db.WithContext(ctx).Save(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewAlreadyExists("Tag already exists.")
		}
		return apperrors.NewInternal("failed to update tag").WithCause(err)
	}
	return nil
}

func (r *TagRepository) Delete(ctx context.Context, tagID, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.NoteTag{}, "id = ? AND user_id = ?", tagID, userID)
	if res.Error != nil {
		return false, apperrors.NewInternal("failed to delete tag").WithCause(res.Error)
	}
	return res.RowsAffected > 0, nil
}
