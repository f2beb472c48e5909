package services

import (
	"time"

	"localfin/internal/models"
)

// MonthKeyLayout is the YYYY-MM month key format used for navigation tabs
const MonthKeyLayout = "2006-01"

// monthService implements MonthServiceInterface. All operations are
// stateless pure functions; the currently selected month is transient UI
// state that lives outside this core.
type monthService struct{}

// NewMonthService creates a new MonthServiceInterface instance
func NewMonthService() MonthServiceInterface {
	return &monthService{}
}

// MonthsBetween enumerates every calendar month from the month containing
// the range's min date through the month containing its max date, inclusive,
// and returns them newest first so index 0 is the default selected tab.
// An absent bound signals "no data yet" and yields an empty sequence, as
// does a bound that does not parse as a calendar date.
func (s *monthService) MonthsBetween(dateRange models.DateRange) []string {
	if dateRange.IsEmpty() {
		return []string{}
	}

	minDate, err := time.Parse(models.DateLayout, *dateRange.MinDate)
	if err != nil {
		return []string{}
	}
	maxDate, err := time.Parse(models.DateLayout, *dateRange.MaxDate)
	if err != nil {
		return []string{}
	}

	cur := time.Date(minDate.Year(), minDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(maxDate.Year(), maxDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := []string{}
	for !cur.After(last) {
		months = append(months, cur.Format(MonthKeyLayout))
		cur = cur.AddDate(0, 1, 0)
	}

	// newest first in tabs
	for i, j := 0, len(months)-1; i < j; i, j = i+1, j-1 {
		months[i], months[j] = months[j], months[i]
	}

	return months
}

// MonthLabel formats a YYYY-MM month key as a human-readable "January 2006"
// string in a fixed English locale. Purely presentational; an unparseable
// key is returned unchanged.
func (s *monthService) MonthLabel(monthKey string) string {
	t, err := time.Parse(MonthKeyLayout, monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format("January 2006")
}
