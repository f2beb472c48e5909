package services

import (
	"sort"
	"time"

	"localfin/internal/models"

	"github.com/shopspring/decimal"
)

// summaryService implements SummaryServiceInterface. It is pure and
// stateless: every call recomputes the summary from its inputs, there is no
// caching layer between it and the store.
type summaryService struct {
	metrics MetricsRecorderInterface
}

// NewSummaryService creates a new SummaryServiceInterface instance
func NewSummaryService(metrics MetricsRecorderInterface) SummaryServiceInterface {
	return &summaryService{
		metrics: metrics,
	}
}

// Summarize groups records by the caller-supplied key extractor and computes
// per-group totals plus the grand total across all groups. Records whose key
// extracts to the empty string fall into the "Other" group. Entries are
// ordered by descending total; ties are broken by key ascending so the
// ordering stays deterministic.
func (s *summaryService) Summarize(records []models.Expense, keyFn func(models.Expense) string) models.ExpenseSummary {
	start := time.Now()

	totals := make(map[string]decimal.Decimal, len(records))
	for _, record := range records {
		key := keyFn(record)
		if key == "" {
			key = models.FallbackGroup
		}
		totals[key] = totals[key].Add(record.Amount)
	}

	entries := make([]models.SummaryEntry, 0, len(totals))
	grandTotal := decimal.Zero
	for key, total := range totals {
		entries = append(entries, models.SummaryEntry{Key: key, Total: total})
		grandTotal = grandTotal.Add(total)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Total.Equal(entries[j].Total) {
			return entries[i].Total.GreaterThan(entries[j].Total)
		}
		return entries[i].Key < entries[j].Key
	})

	if s.metrics != nil {
		s.metrics.RecordSummaryDuration(float64(time.Since(start).Microseconds()) / 1000.0)
	}

	return models.ExpenseSummary{
		Entries:    entries,
		GrandTotal: grandTotal,
	}
}

// SummarizeByCategory groups records by their category name
func (s *summaryService) SummarizeByCategory(records []models.Expense) models.ExpenseSummary {
	return s.Summarize(records, func(e models.Expense) string {
		return e.Category
	})
}

// SummarizeByPaidFor groups records by the user they were paid for
func (s *summaryService) SummarizeByPaidFor(records []models.Expense) models.ExpenseSummary {
	return s.Summarize(records, func(e models.Expense) string {
		return e.PaidFor
	})
}
