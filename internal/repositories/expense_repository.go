package repositories

import (
	"errors"
	"fmt"

	"localfin/internal/models"

	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create inserts a new expense record
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID
func (r *expenseRepository) GetByID(id int64) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// List retrieves all expense records ordered by date descending, ties broken
// by id descending (most recently inserted on a date first)
func (r *expenseRepository) List() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// ListByMonth retrieves expense records whose stored date string starts with
// the given YYYY-MM prefix. This is deliberately a string prefix match on the
// stored representation, not a calendar range query: records with malformed
// or non-ISO dates are silently excluded, never rejected.
func (r *expenseRepository) ListByMonth(month string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("date LIKE ?", month+"-%").
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses for month %s: %w", month, err)
	}
	return expenses, nil
}

// GetDateRange returns the earliest and latest expense dates, with both
// bounds nil when no records exist
func (r *expenseRepository) GetDateRange() (models.DateRange, error) {
	var row struct {
		MinDate *string
		MaxDate *string
	}

	if err := r.db.Model(&models.Expense{}).
		Select("MIN(date) AS min_date, MAX(date) AS max_date").
		Scan(&row).Error; err != nil {
		return models.DateRange{}, fmt.Errorf("failed to get expense date range: %w", err)
	}

	return models.DateRange{MinDate: row.MinDate, MaxDate: row.MaxDate}, nil
}

// Update replaces date, amount, paid_for, category, and note of an existing
// expense in one statement. The populated model is the Updates destination so
// the BeforeUpdate hook validates the incoming values, not a zero struct.
func (r *expenseRepository) Update(expense *models.Expense) error {
	result := r.db.Model(expense).
		Updates(map[string]interface{}{
			"date":     expense.Date,
			"amount":   expense.Amount,
			"paid_for": expense.PaidFor,
			"category": expense.Category,
			"note":     expense.Note,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete permanently removes an expense record
func (r *expenseRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
