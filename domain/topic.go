package domain

import (
	"time"

	"github.com/google/uuid"
)

// Position is a topic's 2D placement on the graph canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Topic is a node in a user's knowledge graph. The (title, user) pair is
// unique; a second topic with the same title under the same owner is a
// conflict, while the same title under another owner is fine.
type Topic struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_user_topic_title" json:"user_id"`
	Title       string    `gorm:"size:255;not null;uniqueIndex:uq_user_topic_title" json:"title"`
	Description *string   `json:"description,omitempty"`
	NodeType    *string   `gorm:"size:20" json:"node_type,omitempty"`
	Position    *Position `gorm:"serializer:json" json:"position,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// FK constraint only, never loaded.
	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Topic) TableName() string { return "topics" }

// TopicEdge is a directed relation between two topics. No self-loops, no
// duplicate (source, target) pairs; an edge cannot outlive either endpoint.
type TopicEdge struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Source       uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_edge_source_target" json:"source"`
	Target       uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_edge_source_target" json:"target"`
	RelationType *string        `gorm:"size:50" json:"relation_type,omitempty"`
	Metadata     map[string]any `gorm:"serializer:json" json:"metadata,omitempty"`

	// FK constraints only, never loaded.
	SourceTopic *Topic `gorm:"foreignKey:Source;constraint:OnDelete:CASCADE" json:"-"`
	TargetTopic *Topic `gorm:"foreignKey:Target;constraint:OnDelete:CASCADE" json:"-"`
}

func (TopicEdge) TableName() string { return "topic_edges" }
