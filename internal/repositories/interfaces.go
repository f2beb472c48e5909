package repositories

import (
	"localfin/internal/models"
)

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id int64) (*models.Expense, error)
	List() ([]models.Expense, error)
	ListByMonth(month string) ([]models.Expense, error)
	GetDateRange() (models.DateRange, error)
	Update(expense *models.Expense) error
	Delete(id int64) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	List() ([]models.User, error)
	ExistsByName(name string) (bool, error)
	Delete(id int64) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id int64) (*models.Category, error)
	List() ([]models.Category, error)
	ExistsByName(name string) (bool, error)
	Update(category *models.Category) error
	Delete(id int64) error
}

// SavedExpenseRepositoryInterface defines the contract for saved expense repository operations
type SavedExpenseRepositoryInterface interface {
	Create(saved *models.SavedExpense) error
	GetByID(id int64) (*models.SavedExpense, error)
	List() ([]models.SavedExpense, error)
	Update(saved *models.SavedExpense) error
	Delete(id int64) error
}
