package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrMissingUserName  = errors.New("user name is required")
	ErrMissingUserColor = errors.New("user color is required")
)

// User represents a household member expenses can be recorded for.
// Expenses reference users by name, not by id, so deleting a user leaves
// its historical expense records untouched.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Color     string    `gorm:"type:varchar(30);not null" json:"color"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrMissingUserName
	}
	if u.Color == "" {
		return ErrMissingUserColor
	}
	return nil
}
