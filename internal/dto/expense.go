package dto

// ExpenseRequest is the request body for creating or replacing an expense
type ExpenseRequest struct {
	Date     string   `json:"date" validate:"required"`
	Amount   *float64 `json:"amount" validate:"required"`
	PaidFor  string   `json:"paidFor" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Note     string   `json:"note"`
}

// ExpenseResponse represents a single expense record in API responses.
// Amounts are serialized as decimal strings to avoid float rounding on the wire.
type ExpenseResponse struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Amount   string `json:"amount"`
	PaidFor  string `json:"paidFor"`
	Category string `json:"category"`
	Note     string `json:"note,omitempty"`
}

// CreateExpenseResponse is the response for a successful expense creation
type CreateExpenseResponse struct {
	ID int64 `json:"id"`
}

// ListExpensesResponse is the response for listing a month's expenses
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}

// DateRangeResponse reports the oldest and newest expense dates in the store.
// Both bounds are null when no expenses exist yet.
type DateRangeResponse struct {
	MinDate *string `json:"minDate"`
	MaxDate *string `json:"maxDate"`
}

// MonthTab is one entry in the month navigation strip
type MonthTab struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ListMonthsResponse is the response for the month navigation endpoint,
// ordered newest first
type ListMonthsResponse struct {
	Months []MonthTab `json:"months"`
}

// SummaryEntryResponse is one group's total within an expense summary
type SummaryEntryResponse struct {
	Key   string `json:"key"`
	Total string `json:"total"`
}

// SummaryResponse is the response for the expense summary endpoint
type SummaryResponse struct {
	Month      string                 `json:"month"`
	By         string                 `json:"by"`
	Entries    []SummaryEntryResponse `json:"entries"`
	GrandTotal string                 `json:"grandTotal"`
}
