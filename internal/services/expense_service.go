package services

import (
	"errors"
	"fmt"
	"log/slog"

	"localfin/internal/models"
	"localfin/internal/repositories"
)

var (
	ErrUnknownUser     = errors.New("paidFor does not name an existing user")
	ErrUnknownCategory = errors.New("category is not a known category")
)

// expenseService implements the write-path policy for expense records:
// paidFor must name a row in the live users table and category must name a
// row in the live categories table at write time. A rejected write leaves
// the store untouched.
type expenseService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
}

// NewExpenseService creates a new ExpenseServiceInterface instance
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) ExpenseServiceInterface {
	return &expenseService{
		expenseRepo:  expenseRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

// Create validates and inserts a new expense record
func (s *expenseService) Create(expense *models.Expense) error {
	if err := s.validate(expense); err != nil {
		return err
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		slog.Error("failed to create expense",
			"date", expense.Date,
			"category", expense.Category,
			"error", err)
		return err
	}

	s.metrics.RecordExpenseCreated(expense.Category)
	slog.Info("expense created",
		"id", expense.ID,
		"date", expense.Date,
		"amount", expense.Amount.String(),
		"category", expense.Category,
		"paid_for", expense.PaidFor)

	return nil
}

// Update validates and fully replaces an existing expense record
func (s *expenseService) Update(expense *models.Expense) error {
	if err := s.validate(expense); err != nil {
		return err
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return err
		}
		slog.Error("failed to update expense", "id", expense.ID, "error", err)
		return err
	}

	s.metrics.RecordExpenseUpdated()
	slog.Info("expense updated", "id", expense.ID, "date", expense.Date)

	return nil
}

// Delete permanently removes an expense record
func (s *expenseService) Delete(id int64) error {
	if err := s.expenseRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return err
		}
		slog.Error("failed to delete expense", "id", id, "error", err)
		return err
	}

	s.metrics.RecordExpenseDeleted()
	slog.Info("expense deleted", "id", id)

	return nil
}

func (s *expenseService) validate(expense *models.Expense) error {
	if err := expense.Validate(); err != nil {
		s.metrics.RecordWriteRejected("invalid_fields")
		return err
	}

	userExists, err := s.userRepo.ExistsByName(expense.PaidFor)
	if err != nil {
		return fmt.Errorf("failed to validate paidFor: %w", err)
	}
	if !userExists {
		s.metrics.RecordWriteRejected("unknown_user")
		slog.Warn("expense write rejected: unknown user", "paid_for", expense.PaidFor)
		return ErrUnknownUser
	}

	categoryExists, err := s.categoryRepo.ExistsByName(expense.Category)
	if err != nil {
		return fmt.Errorf("failed to validate category: %w", err)
	}
	if !categoryExists {
		s.metrics.RecordWriteRejected("unknown_category")
		slog.Warn("expense write rejected: unknown category", "category", expense.Category)
		return ErrUnknownCategory
	}

	return nil
}
