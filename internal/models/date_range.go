package models

// DateRange holds the earliest and latest expense dates in the store.
// Both bounds are nil when no expense records exist, which callers treat
// as the "no data yet" signal for month navigation.
type DateRange struct {
	MinDate *string `json:"minDate"`
	MaxDate *string `json:"maxDate"`
}

// IsEmpty reports whether the range carries no data
func (r DateRange) IsEmpty() bool {
	return r.MinDate == nil || r.MaxDate == nil
}
