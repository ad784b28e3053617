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

// CreateNoteInput is the note creation payload. TagIDs, when present,
// must all resolve to tags owned by the caller.
type CreateNoteInput struct {
	TopicID uuid.UUID   `json:"topic_id" validate:"required"`
	Title   *string     `json:"title,omitempty" validate:"omitempty,max=255"`
	Content string      `json:"content" validate:"required"`
	URLs    []string    `json:"urls,omitempty"`
	TagIDs  []uuid.UUID `json:"tag_ids,omitempty"`
}

// UpdateNoteInput is the note patch payload. TagIDs is a pointer on
// purpose: nil leaves the tag set untouched, an empty slice clears it,
// a non-empty slice validates and replaces it.
type UpdateNoteInput struct {
	Title   *string      `json:"title,omitempty" validate:"omitempty,max=255"`
	Content *string      `json:"content,omitempty"`
	URLs    []string     `json:"urls,omitempty"`
	TagIDs  *[]uuid.UUID `json:"tag_ids,omitempty"`
}

// NoteService implements the note use cases. Notes are scoped to both
// their owner and their parent topic.
type NoteService struct {
	notes  ports.NoteRepository
	topics ports.TopicRepository
	logger *zap.Logger
}

// NewNoteService creates a note service.
func NewNoteService(notes ports.NoteRepository, topics ports.TopicRepository, logger *zap.Logger) *NoteService {
	return &NoteService{notes: notes, topics: topics, logger: logger}
}

// ListByTopic returns the topic's notes with their tag sets. The topic
// must exist for the caller; a topic with zero notes is NotFound.
func (s *NoteService) ListByTopic(ctx context.Context, topicID, userID uuid.UUID) ([]domain.NoteWithTags, error) {
	if _, err := s.topics.GetByID(ctx, topicID, userID); err != nil {
		return nil, err
	}
	notes, err := s.notes.ListWithTagsByTopic(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, apperrors.NewNotFound("Notes")
	}
	return notes, nil
}

// Create persists the note under the given topic. Tag validation runs
// before the note is written, so a bad tag id leaves nothing behind.
func (s *NoteService) Create(ctx context.Context, userID uuid.UUID, input CreateNoteInput) (*domain.NoteWithTags, error) {
	if _, err := s.topics.GetByID(ctx, input.TopicID, userID); err != nil {
		return nil, err
	}

	if len(input.TagIDs) > 0 {
		ok, err := s.notes.ValidateTagsBelongToUser(ctx, input.TagIDs, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NewInvalidTags("Invalid tags.")
		}
	}

	note := &domain.Note{
		TopicID: input.TopicID,
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
		URLs:    input.URLs,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	if len(input.TagIDs) > 0 {
		if err := s.notes.SetTags(ctx, note.ID, input.TagIDs); err != nil {
			return nil, err
		}
	}

	s.logger.Info("note created",
		zap.String("noteID", note.ID.String()),
		zap.String("topicID", input.TopicID.String()),
	)
	return s.notes.GetWithTags(ctx, note.ID, userID)
}

func (s *NoteService) Get(ctx context.Context, noteID, userID uuid.UUID) (*domain.NoteWithTags, error) {
	return s.notes.GetWithTags(ctx, noteID, userID)
}

// Update applies the non-nil patch fields, then reconciles the tag set
// per the TagIDs pointer semantics.
func (s *NoteService) Update(ctx context.Context, noteID, userID uuid.UUID, input UpdateNoteInput) (*domain.NoteWithTags, error) {
	note, err := s.notes.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if input.TagIDs != nil && len(*input.TagIDs) > 0 {
		ok, err := s.notes.ValidateTagsBelongToUser(ctx, *input.TagIDs, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NewInvalidTags("Invalid tags.")
		}
	}

	if input.Title != nil {
		note.Title = input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.URLs != nil {
		note.URLs = input.URLs
	}
	note.UpdatedAt = time.Now()

	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}

	if input.TagIDs != nil {
		if err := s.notes.SetTags(ctx, note.ID, *input.TagIDs); err != nil {
			return nil, err
		}
	}

	return s.notes.GetWithTags(ctx, note.ID, userID)
}

func (s *NoteService) Delete(ctx context.Context, noteID, userID uuid.UUID) error {
	deleted, err := s.notes.Delete(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("Note")
	}
	return nil
}
