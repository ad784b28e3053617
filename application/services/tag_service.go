package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"neuronotes-backend/application/ports"
	"neuronotes-backend/domain"
	apperrors "neuronotes-backend/pkg/errors"
)

// CreateTagInput is the tag creation payload.
type CreateTagInput struct {
	Name  string  `json:"name" validate:"required,max=50"`
	Color *string `json:"color,omitempty" validate:"omitempty,max=20"`
}

// UpdateTagInput is the tag patch payload; nil fields stay untouched.
type UpdateTagInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Color *string `json:"color,omitempty" validate:"omitempty,max=20"`
}

// TagService implements the tag use cases, scoped to the caller.
type TagService struct {
	tags   ports.TagRepository
	logger *zap.Logger
}

// NewTagService creates a tag service.
func NewTagService(tags ports.TagRepository, logger *zap.Logger) *TagService {
	return &TagService{tags: tags, logger: logger}
}

// Create enforces per-owner name uniqueness with a lookup first and the
// unique constraint as the race backstop.
func (s *TagService) Create(ctx context.Context, userID uuid.UUID, input CreateTagInput) (*domain.NoteTag, error) {
	if _, err := s.tags.GetByName(ctx, input.Name, userID); err == nil {
		return nil, apperrors.NewAlreadyExists("Tag already exists.")
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	tag := &domain.NoteTag{
		UserID: userID,
		Name:   input.Name,
		Color:  input.Color,
	}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}

	s.logger.Info("tag created",
		zap.String("tagID", tag.ID.String()),
		zap.String("userID", userID.String()),
	)
	return tag, nil
}

// List returns the caller's tags; zero tags is an Empty condition.
func (s *TagService) List(ctx context.Context, userID uuid.UUID) ([]domain.NoteTag, error) {
	tags, err := s.tags.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, apperrors.NewEmpty("No tags found.")
	}
	return tags, nil
}

func (s *TagService) Get(ctx context.Context, tagID, userID uuid.UUID) (*domain.NoteTag, error) {
	return s.tags.GetByID(ctx, tagID, userID)
}

// Update applies the patch. Name uniqueness is only re-checked when the
// name actually changes.
func (s *TagService) Update(ctx context.Context, tagID, userID uuid.UUID, input UpdateTagInput) (*domain.NoteTag, error) {
	tag, err := s.tags.GetByID(ctx, tagID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != tag.Name {
		if _, err := s.tags.GetByName(ctx, *input.Name, userID); err == nil {
			return nil, apperrors.NewAlreadyExists("Tag name already exists.")
		} else if !apperrors.IsNotFound(err) {
			return nil, err
		}
		tag.Name = *input.Name
	}
	if input.Color != nil {
		tag.Color = input.Color
	}

	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Delete(ctx context.Context, tagID, userID uuid.UUID) error {
	if _, err := s.tags.GetByID(ctx, tagID, userID); err != nil {
		return err
	}
	deleted, err := s.tags.Delete(ctx, tagID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("Tag")
	}
	return nil
}
