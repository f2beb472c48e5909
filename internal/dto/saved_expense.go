package dto

import "time"

// SavedExpenseRequest is the request body for creating or updating a saved
// expense prototype. PaidFor and Note are optional prefill values.
type SavedExpenseRequest struct {
	Category string `json:"category" validate:"required,max=100"`
	PaidFor  string `json:"paidfor" validate:"max=100"`
	Note     string `json:"note"`
}

// SavedExpenseResponse represents a saved expense prototype in API responses
type SavedExpenseResponse struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	PaidFor   string    `json:"paidfor"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListSavedExpensesResponse is the response for listing saved expense prototypes
type ListSavedExpensesResponse struct {
	SavedExpenses []SavedExpenseResponse `json:"savedExpenses"`
}
