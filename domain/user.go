package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Email and username are stored lower-cased
// and are globally unique.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username       string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
