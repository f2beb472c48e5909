package repositories

import (
	"errors"
	"fmt"

	"localfin/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// userRepository implements UserRepositoryInterface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &userRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// List retrieves all users, newest first
func (r *userRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ExistsByName reports whether a user with the given name exists.
// Used to validate the paidFor field of expense writes.
func (r *userRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// Delete removes a user. Expenses referencing the user by name are left
// untouched; there is no cascade.
func (r *userRepository) Delete(id int64) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
