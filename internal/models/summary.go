package models

import "github.com/shopspring/decimal"

// FallbackGroup is the group expenses with a missing key fall into
const FallbackGroup = "Other"

// SummaryEntry contains the aggregated total for one group of expenses
type SummaryEntry struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// ExpenseSummary contains aggregated expense data grouped by a caller-chosen
// key, ordered by descending total, plus the grand total across all groups
type ExpenseSummary struct {
	Entries    []SummaryEntry  `json:"entries"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}
