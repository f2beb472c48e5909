package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpenseModelTestSuite struct {
	suite.Suite
}

func TestExpenseModelSuite(t *testing.T) {
	suite.Run(t, new(ExpenseModelTestSuite))
}

func (s *ExpenseModelTestSuite) validExpense() *Expense {
	return &Expense{
		Date:     "2024-03-15",
		Amount:   decimal.NewFromFloat(42.50),
		PaidFor:  "ido",
		Category: "Groceries",
		Note:     "weekly shop",
	}
}

func (s *ExpenseModelTestSuite) TestValidate_ValidExpense() {
	s.NoError(s.validExpense().Validate())
}

func (s *ExpenseModelTestSuite) TestValidate_ZeroAmountIsAccepted() {
	e := s.validExpense()
	e.Amount = decimal.Zero
	s.NoError(e.Validate())
}

func (s *ExpenseModelTestSuite) TestValidate_NegativeAmount() {
	e := s.validExpense()
	e.Amount = decimal.NewFromFloat(-0.01)
	s.ErrorIs(e.Validate(), ErrNegativeAmount)
}

func (s *ExpenseModelTestSuite) TestValidate_InvalidDates() {
	testCases := []struct {
		name string
		date string
	}{
		{"empty", ""},
		{"not a date", "yesterday"},
		{"wrong separator", "2024/03/15"},
		{"unpadded month", "2024-3-15"},
		{"unpadded day", "2024-03-5"},
		{"month out of range", "2024-13-01"},
		{"day out of range", "2024-02-30"},
		{"date only prefix", "2024-03"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			e := s.validExpense()
			e.Date = tc.date
			s.ErrorIs(e.Validate(), ErrInvalidDate)
		})
	}
}

func (s *ExpenseModelTestSuite) TestValidate_MissingPaidFor() {
	e := s.validExpense()
	e.PaidFor = ""
	s.ErrorIs(e.Validate(), ErrMissingPaidFor)
}

func (s *ExpenseModelTestSuite) TestValidate_MissingCategory() {
	e := s.validExpense()
	e.Category = ""
	s.ErrorIs(e.Validate(), ErrMissingCategory)
}

func (s *ExpenseModelTestSuite) TestMonthKey() {
	e := s.validExpense()
	s.Equal("2024-03", e.MonthKey())

	short := &Expense{Date: "2024"}
	s.Equal("2024", short.MonthKey())
}

func (s *ExpenseModelTestSuite) TestIsValidDate() {
	s.True(IsValidDate("2024-01-01"))
	s.True(IsValidDate("2023-12-31"))
	s.False(IsValidDate("2024-1-1"))
	s.False(IsValidDate("01-01-2024"))
	s.False(IsValidDate(""))
}
