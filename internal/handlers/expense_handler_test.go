package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"localfin/internal/dto"
	"localfin/internal/models"
	"localfin/internal/repositories"
	"localfin/internal/repositories/repository_mocks"
	"localfin/internal/services"
	"localfin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseHandlerTestSuite is the test suite for ExpenseHandler
type ExpenseHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockExpenseRepo    *repository_mocks.MockExpenseRepositoryInterface
	mockExpenseService *service_mocks.MockExpenseServiceInterface
	mockSummaryService *service_mocks.MockSummaryServiceInterface
	mockMonthService   *service_mocks.MockMonthServiceInterface
	handler            *ExpenseHandler
	echo               *echo.Echo
}

// SetupTest initializes the test suite before each test
func (s *ExpenseHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockExpenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.mockExpenseService = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.mockSummaryService = service_mocks.NewMockSummaryServiceInterface(s.ctrl)
	s.mockMonthService = service_mocks.NewMockMonthServiceInterface(s.ctrl)
	s.handler = NewExpenseHandler(s.mockExpenseRepo, s.mockExpenseService, s.mockSummaryService, s.mockMonthService)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest cleans up after each test
func (s *ExpenseHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestExpenseHandlerSuite runs the test suite
func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}

func (s *ExpenseHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

// TestListExpenses_ByMonth tests listing one month's expenses
func (s *ExpenseHandlerTestSuite) TestListExpenses_ByMonth() {
	expenses := []models.Expense{
		{ID: 2, Date: "2024-03-20", Amount: decimal.NewFromFloat(42.00), PaidFor: "Anna", Category: "Transport"},
		{ID: 1, Date: "2024-03-05", Amount: decimal.NewFromFloat(12.50), PaidFor: "Ben", Category: "Groceries"},
	}
	s.mockExpenseRepo.EXPECT().ListByMonth("2024-03").Return(expenses, nil)

	c, rec := s.newContext(http.MethodGet, "/api/expenses?month=2024-03", "")
	err := s.handler.ListExpenses(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListExpensesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Count)
	s.Equal(int64(2), resp.Expenses[0].ID)
	s.Equal("42", resp.Expenses[0].Amount)
	s.Equal("Groceries", resp.Expenses[1].Category)
}

// TestListExpenses_All tests listing without a month filter
func (s *ExpenseHandlerTestSuite) TestListExpenses_All() {
	s.mockExpenseRepo.EXPECT().List().Return([]models.Expense{}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/expenses", "")
	err := s.handler.ListExpenses(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListExpensesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(0, resp.Count)
	s.Empty(resp.Expenses)
}

// TestListExpenses_MalformedMonth tests rejection of a malformed month filter
func (s *ExpenseHandlerTestSuite) TestListExpenses_MalformedMonth() {
	c, rec := s.newContext(http.MethodGet, "/api/expenses?month=2024-3", "")
	err := s.handler.ListExpenses(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("VALIDATION_003", resp.Error.Code)
}

// TestGetDateRange_EmptyStore tests null bounds when no expenses exist
func (s *ExpenseHandlerTestSuite) TestGetDateRange_EmptyStore() {
	s.mockExpenseRepo.EXPECT().GetDateRange().Return(models.DateRange{}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/expenses/range", "")
	err := s.handler.GetDateRange(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"minDate":null,"maxDate":null}`, rec.Body.String())
}

// TestGetDateRange_WithData tests reporting both bounds
func (s *ExpenseHandlerTestSuite) TestGetDateRange_WithData() {
	minDate := "2023-11-15"
	maxDate := "2024-02-03"
	s.mockExpenseRepo.EXPECT().GetDateRange().Return(models.DateRange{MinDate: &minDate, MaxDate: &maxDate}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/expenses/range", "")
	err := s.handler.GetDateRange(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"minDate":"2023-11-15","maxDate":"2024-02-03"}`, rec.Body.String())
}

// TestListMonths_NewestFirst tests the month tab endpoint ordering and labels
func (s *ExpenseHandlerTestSuite) TestListMonths_NewestFirst() {
	minDate := "2023-12-10"
	maxDate := "2024-01-20"
	dateRange := models.DateRange{MinDate: &minDate, MaxDate: &maxDate}

	s.mockExpenseRepo.EXPECT().GetDateRange().Return(dateRange, nil)
	s.mockMonthService.EXPECT().MonthsBetween(dateRange).Return([]string{"2024-01", "2023-12"})
	s.mockMonthService.EXPECT().MonthLabel("2024-01").Return("January 2024")
	s.mockMonthService.EXPECT().MonthLabel("2023-12").Return("December 2023")

	c, rec := s.newContext(http.MethodGet, "/api/expenses/months", "")
	err := s.handler.ListMonths(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListMonthsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Months, 2)
	s.Equal(dto.MonthTab{Key: "2024-01", Label: "January 2024"}, resp.Months[0])
	s.Equal(dto.MonthTab{Key: "2023-12", Label: "December 2023"}, resp.Months[1])
}

// TestListMonths_EmptyStore tests the month tab endpoint with no expenses
func (s *ExpenseHandlerTestSuite) TestListMonths_EmptyStore() {
	s.mockExpenseRepo.EXPECT().GetDateRange().Return(models.DateRange{}, nil)
	s.mockMonthService.EXPECT().MonthsBetween(models.DateRange{}).Return([]string{})

	c, rec := s.newContext(http.MethodGet, "/api/expenses/months", "")
	err := s.handler.ListMonths(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"months":[]}`, rec.Body.String())
}

// TestSummarize_ByCategory tests the default category grouping
func (s *ExpenseHandlerTestSuite) TestSummarize_ByCategory() {
	expenses := []models.Expense{
		{ID: 1, Date: "2024-03-05", Amount: decimal.NewFromFloat(30.00), PaidFor: "Anna", Category: "Transport"},
		{ID: 2, Date: "2024-03-06", Amount: decimal.NewFromFloat(20.00), PaidFor: "Ben", Category: "Groceries"},
	}
	summary := models.ExpenseSummary{
		Entries: []models.SummaryEntry{
			{Key: "Transport", Total: decimal.NewFromFloat(30.00)},
			{Key: "Groceries", Total: decimal.NewFromFloat(20.00)},
		},
		GrandTotal: decimal.NewFromFloat(50.00),
	}

	s.mockExpenseRepo.EXPECT().ListByMonth("2024-03").Return(expenses, nil)
	s.mockSummaryService.EXPECT().SummarizeByCategory(expenses).Return(summary)

	c, rec := s.newContext(http.MethodGet, "/api/expenses/summary?month=2024-03", "")
	err := s.handler.Summarize(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SummaryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2024-03", resp.Month)
	s.Equal("category", resp.By)
	s.Len(resp.Entries, 2)
	s.Equal("Transport", resp.Entries[0].Key)
	s.Equal("30", resp.Entries[0].Total)
	s.Equal("50", resp.GrandTotal)
}

// TestSummarize_ByPaidFor tests grouping by user
func (s *ExpenseHandlerTestSuite) TestSummarize_ByPaidFor() {
	expenses := []models.Expense{
		{ID: 1, Date: "2024-03-05", Amount: decimal.NewFromFloat(30.00), PaidFor: "Anna", Category: "Transport"},
	}
	summary := models.ExpenseSummary{
		Entries:    []models.SummaryEntry{{Key: "Anna", Total: decimal.NewFromFloat(30.00)}},
		GrandTotal: decimal.NewFromFloat(30.00),
	}

	s.mockExpenseRepo.EXPECT().ListByMonth("2024-03").Return(expenses, nil)
	s.mockSummaryService.EXPECT().SummarizeByPaidFor(expenses).Return(summary)

	c, rec := s.newContext(http.MethodGet, "/api/expenses/summary?month=2024-03&by=paidFor", "")
	err := s.handler.Summarize(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SummaryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("paidFor", resp.By)
	s.Equal("Anna", resp.Entries[0].Key)
}

// TestSummarize_InvalidGrouping tests rejection of an unknown grouping dimension
func (s *ExpenseHandlerTestSuite) TestSummarize_InvalidGrouping() {
	c, rec := s.newContext(http.MethodGet, "/api/expenses/summary?month=2024-03&by=note", "")
	err := s.handler.Summarize(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// TestSummarize_MissingMonth tests rejection when the month parameter is absent
func (s *ExpenseHandlerTestSuite) TestSummarize_MissingMonth() {
	c, rec := s.newContext(http.MethodGet, "/api/expenses/summary", "")
	err := s.handler.Summarize(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// TestCreateExpense_Success tests creating a valid expense
func (s *ExpenseHandlerTestSuite) TestCreateExpense_Success() {
	s.mockExpenseService.EXPECT().Create(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		s.Equal("2024-03-11", expense.Date)
		s.True(expense.Amount.Equal(decimal.NewFromFloat(18.90)))
		s.Equal("Anna", expense.PaidFor)
		s.Equal("Groceries", expense.Category)
		expense.ID = 42
		return nil
	})

	body := `{"date":"2024-03-11","amount":18.90,"paidFor":"Anna","category":"Groceries","note":"weekly shop"}`
	c, rec := s.newContext(http.MethodPost, "/api/expenses", body)
	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"id":42}`, rec.Body.String())
}

// TestCreateExpense_MissingAmount tests rejection when amount is absent
func (s *ExpenseHandlerTestSuite) TestCreateExpense_MissingAmount() {
	body := `{"date":"2024-03-11","paidFor":"Anna","category":"Groceries"}`
	c, rec := s.newContext(http.MethodPost, "/api/expenses", body)
	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// TestCreateExpense_ZeroAmountAccepted tests that an explicit zero amount passes binding
func (s *ExpenseHandlerTestSuite) TestCreateExpense_ZeroAmountAccepted() {
	s.mockExpenseService.EXPECT().Create(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		s.True(expense.Amount.IsZero())
		expense.ID = 7
		return nil
	})

	body := `{"date":"2024-03-11","amount":0,"paidFor":"Anna","category":"Groceries"}`
	c, rec := s.newContext(http.MethodPost, "/api/expenses", body)
	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

// TestCreateExpense_UnknownUser tests the 422 mapping for an unknown user
func (s *ExpenseHandlerTestSuite) TestCreateExpense_UnknownUser() {
	s.mockExpenseService.EXPECT().Create(gomock.Any()).Return(services.ErrUnknownUser)

	body := `{"date":"2024-03-11","amount":5,"paidFor":"Nobody","category":"Groceries"}`
	c, rec := s.newContext(http.MethodPost, "/api/expenses", body)
	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("EXPENSE_003", resp.Error.Code)
}

// TestCreateExpense_UnknownCategory tests the 422 mapping for an unknown category
func (s *ExpenseHandlerTestSuite) TestCreateExpense_UnknownCategory() {
	s.mockExpenseService.EXPECT().Create(gomock.Any()).Return(services.ErrUnknownCategory)

	body := `{"date":"2024-03-11","amount":5,"paidFor":"Anna","category":"Yachts"}`
	c, rec := s.newContext(http.MethodPost, "/api/expenses", body)
	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("EXPENSE_004", resp.Error.Code)
}

// TestCreateExpense_InvalidDate tests the 400 mapping for a malformed date
func (s *ExpenseHandlerTestSuite) TestCreateExpense_InvalidDate() {
	s.mockExpenseService.EXPECT().Create(gomock.Any()).Return(models.ErrInvalidDate)

	body := `{"date":"2024-3-11","amount":5,"paidFor":"Anna","category":"Groceries"}`
	c, rec := s.newContext(http.MethodPost, "/api/expenses", body)
	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("VALIDATION_004", resp.Error.Code)
}

// TestUpdateExpense_Success tests a full replacement
func (s *ExpenseHandlerTestSuite) TestUpdateExpense_Success() {
	s.mockExpenseService.EXPECT().Update(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		s.Equal(int64(7), expense.ID)
		s.Equal("2024-04-01", expense.Date)
		return nil
	})

	body := `{"date":"2024-04-01","amount":9.99,"paidFor":"Ben","category":"Leisure"}`
	c, rec := s.newContext(http.MethodPut, "/api/expenses/7", body)
	c.SetParamNames("id")
	c.SetParamValues("7")
	err := s.handler.UpdateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ExpenseResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(7), resp.ID)
	s.Equal("9.99", resp.Amount)
}

// TestUpdateExpense_NotFound tests updating a missing expense
func (s *ExpenseHandlerTestSuite) TestUpdateExpense_NotFound() {
	s.mockExpenseService.EXPECT().Update(gomock.Any()).Return(repositories.ErrExpenseNotFound)

	body := `{"date":"2024-04-01","amount":9.99,"paidFor":"Ben","category":"Leisure"}`
	c, rec := s.newContext(http.MethodPut, "/api/expenses/404", body)
	c.SetParamNames("id")
	c.SetParamValues("404")
	err := s.handler.UpdateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("EXPENSE_001", resp.Error.Code)
}

// TestUpdateExpense_InvalidID tests rejection of a non-numeric ID
func (s *ExpenseHandlerTestSuite) TestUpdateExpense_InvalidID() {
	c, rec := s.newContext(http.MethodPut, "/api/expenses/abc", `{"date":"2024-04-01","amount":1,"paidFor":"Ben","category":"Leisure"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err := s.handler.UpdateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("EXPENSE_002", resp.Error.Code)
}

// TestDeleteExpense_Success tests deleting an existing expense
func (s *ExpenseHandlerTestSuite) TestDeleteExpense_Success() {
	s.mockExpenseService.EXPECT().Delete(int64(3)).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/expenses/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	err := s.handler.DeleteExpense(c)

	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
}

// TestDeleteExpense_NotFound tests deleting a missing expense
func (s *ExpenseHandlerTestSuite) TestDeleteExpense_NotFound() {
	s.mockExpenseService.EXPECT().Delete(int64(404)).Return(repositories.ErrExpenseNotFound)

	c, rec := s.newContext(http.MethodDelete, "/api/expenses/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")
	err := s.handler.DeleteExpense(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}
