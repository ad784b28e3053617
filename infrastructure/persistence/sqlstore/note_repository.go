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

// NoteRepository is the gorm-backed note store. It also owns the
// note-tag association table since every mutation of it happens through
// a note.
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a note repository.
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

var _ ports.NoteRepository = (*NoteRepository)(nil)

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return apperrors.NewInternal("failed to create note").WithCause(err)
	}
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, noteID, userID uuid.UUID) (*domain.Note, error) {
	var note domain.Note
	err := r.db.WithContext(ctx).First(&note, "id = ? AND user_id = ?", noteID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Note")
		}
		return nil, apperrors.NewInternal("failed to load note").WithCause(err)
	}
	return &note, nil
}

func (r *NoteRepository) ListByTopic(ctx context.Context, topicID, userID uuid.UUID) ([]domain.Note, error) {
	var notes []domain.Note
	err := r.db.WithContext(ctx).
		Where("topic_id = ? AND user_id = ?", topicID, userID).
		Order("created_at").
		Find(&notes).Error
	if err != nil {
		return nil, apperrors.NewInternal("failed to list notes").WithCause(err)
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) error {
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return apperrors.NewInternal("failed to update note").WithCause(err)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, noteID, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Note{}, "id = ? AND user_id = ?", noteID, userID)
	if res.Error != nil {
		return false, apperrors.NewInternal("failed to delete note").WithCause(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ValidateTagsBelongToUser counts the caller's tags among tagIDs and
// compares against the input length, so a single foreign or unknown id
// fails the whole set. An empty input is vacuously true.
func (r *NoteRepository) ValidateTagsBelongToUser(ctx context.Context, tagIDs []uuid.UUID, userID uuid.UUID) (bool, error) {
	if len(tagIDs) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.NoteTag{}).
		Where("id IN ? AND user_id = ?", tagIDs, userID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.NewInternal("failed to validate tags").WithCause(err)
	}
	return count == int64(len(tagIDs)), nil
}

// SetTags replaces the note's tag set: delete everything, then insert
// one association row per id, all in one transaction. Duplicate ids in
// the input collapse to a single row.
func (r *NoteRepository) SetTags(ctx context.Context, noteID uuid.UUID, tagIDs []uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.NoteTagMap{}, "note_id = ?", noteID).Error; err != nil {
			return err
		}
		seen := make(map[uuid.UUID]bool, len(tagIDs))
		for _, tagID := range tagIDs {
			if seen[tagID] {
				continue
			}
			seen[tagID] = true
			if err := tx.Create(&domain.NoteTagMap{NoteID: noteID, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewInternal("failed to set note tags").WithCause(err)
	}
	return nil
}

func (r *NoteRepository) GetTags(ctx context.Context, noteID uuid.UUID) ([]domain.NoteTag, error) {
	var tags []domain.NoteTag
	err := r.db.WithContext(ctx).Model(&domain.NoteTag{}).
		Joins("JOIN note_tag_map ON note_tag_map.tag_id = note_tags.id").
		Where("note_tag_map.note_id = ?", noteID).
		Order("note_tags.name").
		Find(&tags).Error
	if err != nil {
		return nil, apperrors.NewInternal("failed to load note tags").WithCause(err)
	}
	return tags, nil
}

func (r *NoteRepository) GetWithTags(ctx context.Context, noteID, userID uuid.UUID) (*domain.NoteWithTags, error) {
	note, err := r.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	tags, err := r.GetTags(ctx, noteID)
	if err != nil {
		return nil, err
	}
	return &domain.NoteWithTags{Note: *note, Tags: tags}, nil
}

func (r *NoteRepository) ListWithTagsByTopic(ctx context.Context, topicID, userID uuid.UUID) ([]domain.NoteWithTags, error) {
	notes, err := r.ListByTopic(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.NoteWithTags, 0, len(notes))
	for i := range notes {
		tags, err := r.GetTags(ctx, notes[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.NoteWithTags{Note: notes[i], Tags: tags})
	}
	return result, nil
}
