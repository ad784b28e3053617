package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note belongs to exactly one topic. Reads and writes are scoped by both
// the owning user and, for lists, the parent topic.
type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TopicID   uuid.UUID `gorm:"type:uuid;not null;index" json:"topic_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     *string   `gorm:"size:255" json:"title,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	URLs      []string  `gorm:"serializer:json" json:"urls,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// FK constraints only, never loaded.
	Topic *Topic `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	User  *User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Note) TableName() string { return "notes" }

// NoteWithTags is a note joined with its current tag set.
type NoteWithTags struct {
	Note
	Tags []NoteTag `json:"tags"`
}
