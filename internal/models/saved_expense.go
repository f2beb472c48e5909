package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrMissingSavedCategory = errors.New("saved expense category is required")

// SavedExpense is a reusable prototype for prefilling the add-expense form.
// It carries no relational enforcement against Category or User; emoji and
// color resolution happen at display time.
type SavedExpense struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Category  string    `gorm:"type:varchar(100);not null" json:"category"`
	PaidFor   string    `gorm:"column:paidfor;type:varchar(100)" json:"paidfor"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for SavedExpense
func (se *SavedExpense) BeforeCreate(tx *gorm.DB) error {
	if se.CreatedAt.IsZero() {
		se.CreatedAt = time.Now()
	}
	return se.Validate()
}

// Validate validates the saved expense fields
func (se *SavedExpense) Validate() error {
	if se.Category == "" {
		return ErrMissingSavedCategory
	}
	return nil
}
