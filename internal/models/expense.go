package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DateLayout is the stored calendar date format for expense records.
// Dates are persisted as ISO YYYY-MM-DD strings; month filtering is a
// string prefix match on this representation.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate     = errors.New("expense date must be a valid YYYY-MM-DD date")
	ErrNegativeAmount  = errors.New("expense amount must be non-negative")
	ErrMissingPaidFor  = errors.New("expense paidFor is required")
	ErrMissingCategory = errors.New("expense category is required")
)

// Expense represents a single expense record
type Expense struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaidFor   string          `gorm:"column:paid_for;type:varchar(100);not null" json:"paidFor"`
	Category  string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Note      string          `gorm:"type:text" json:"note"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if !IsValidDate(e.Date) {
		return ErrInvalidDate
	}

	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if e.PaidFor == "" {
		return ErrMissingPaidFor
	}

	if e.Category == "" {
		return ErrMissingCategory
	}

	return nil
}

// MonthKey returns the YYYY-MM prefix of the expense date
func (e *Expense) MonthKey() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
// A zero-padded round trip is required so "2024-1-5" is rejected even
// though time.Parse would accept it after normalization.
func IsValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}
