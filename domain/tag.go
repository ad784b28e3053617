package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoteTag is a user-owned label. Names are unique per owner.
type NoteTag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_user_tag_name" json:"user_id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex:uq_user_tag_name" json:"name"`
	Color     *string   `gorm:"size:20" json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// FK constraint only, never loaded.
	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (NoteTag) TableName() string { return "note_tags" }

// NoteTagMap is the note-tag join row. Its existence means "this note
// carries this tag"; a tag may only be attached to notes of its owner.
type NoteTagMap struct {
	NoteID uuid.UUID `gorm:"type:uuid;primaryKey" json:"note_id"`
	TagID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"tag_id"`

	// FK constraints only, never loaded.
	Note *Note    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Tag  *NoteTag `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

func (NoteTagMap) TableName() string { return "note_tag_map" }
