package services

import (
	"localfin/internal/models"
)

// SummaryServiceInterface defines the contract for expense aggregation
type SummaryServiceInterface interface {
	Summarize(records []models.Expense, keyFn func(models.Expense) string) models.ExpenseSummary
	SummarizeByCategory(records []models.Expense) models.ExpenseSummary
	SummarizeByPaidFor(records []models.Expense) models.ExpenseSummary
}

// MonthServiceInterface defines the contract for month tab navigation
type MonthServiceInterface interface {
	MonthsBetween(dateRange models.DateRange) []string
	MonthLabel(monthKey string) string
}

// ExpenseServiceInterface defines the contract for validated expense writes
type ExpenseServiceInterface interface {
	Create(expense *models.Expense) error
	Update(expense *models.Expense) error
	Delete(id int64) error
}

// MetricsRecorderInterface abstracts metrics recording for testability
type MetricsRecorderInterface interface {
	RecordExpenseCreated(category string)
	RecordExpenseUpdated()
	RecordExpenseDeleted()
	RecordWriteRejected(reason string)
	RecordSummaryDuration(durationMs float64)
}
