package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrMissingCategoryName  = errors.New("category name is required")
	ErrMissingCategoryEmoji = errors.New("category emoji is required")
	ErrMissingCategoryColor = errors.New("category color is required")
)

// Category represents an expense category with its display accent.
// Expenses store the category name, not the id: renaming or deleting a
// category detaches it from already-written expense records, and display
// falls back to a default glyph/color when the name no longer resolves.
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Emoji     string    `gorm:"type:varchar(10);not null" json:"emoji"`
	Color     string    `gorm:"type:varchar(30);not null" json:"color"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrMissingCategoryName
	}
	if c.Emoji == "" {
		return ErrMissingCategoryEmoji
	}
	if c.Color == "" {
		return ErrMissingCategoryColor
	}
	return nil
}
