package repositories

import (
	"errors"
	"fmt"

	"localfin/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSavedExpenseNotFound = errors.New("saved expense not found")
)

// savedExpenseRepository implements SavedExpenseRepositoryInterface
type savedExpenseRepository struct {
	db *gorm.DB
}

// NewSavedExpenseRepository creates a new saved expense repository
func NewSavedExpenseRepository(db *gorm.DB) SavedExpenseRepositoryInterface {
	return &savedExpenseRepository{
		db: db,
	}
}

// Create inserts a new saved expense template
func (r *savedExpenseRepository) Create(saved *models.SavedExpense) error {
	if err := r.db.Create(saved).Error; err != nil {
		return fmt.Errorf("failed to create saved expense: %w", err)
	}
	return nil
}

// GetByID retrieves a saved expense by ID
func (r *savedExpenseRepository) GetByID(id int64) (*models.SavedExpense, error) {
	var saved models.SavedExpense
	if err := r.db.First(&saved, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get saved expense: %w", err)
	}
	return &saved, nil
}

// List retrieves all saved expense templates in insertion order
func (r *savedExpenseRepository) List() ([]models.SavedExpense, error) {
	var saved []models.SavedExpense
	if err := r.db.Order("id ASC").Find(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to list saved expenses: %w", err)
	}
	return saved, nil
}

// Update replaces category, paidfor, and note of an existing template
func (r *savedExpenseRepository) Update(saved *models.SavedExpense) error {
	result := r.db.Model(&models.SavedExpense{}).
		Where("id = ?", saved.ID).
		Updates(map[string]interface{}{
			"category": saved.Category,
			"paidfor":  saved.PaidFor,
			"note":     saved.Note,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update saved expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSavedExpenseNotFound
	}
	return nil
}

// Delete removes a saved expense template
func (r *savedExpenseRepository) Delete(id int64) error {
	result := r.db.Delete(&models.SavedExpense{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete saved expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSavedExpenseNotFound
	}
	return nil
}
