package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered shopper.
// Password carries the bcrypt hash, never the plaintext.
type User struct {
	ID        string    `json:"_id" gorm:"type:char(36);primaryKey"`
	Username  string    `json:"username" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null;index"` // not unique, signup pre-checks instead
	Password  string    `json:"password,omitempty" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Redacted returns a copy of the user without the password hash.
func (u User) Redacted() User {
	u.Password = ""
	return u
}
