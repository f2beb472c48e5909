package handlers

import (
	"errors"
	"net/http"

	"localfin/internal/dto"
	apierrors "localfin/internal/errors"
	"localfin/internal/models"
	"localfin/internal/repositories"
	"localfin/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseRepo    repositories.ExpenseRepositoryInterface
	expenseService services.ExpenseServiceInterface
	summaryService services.SummaryServiceInterface
	monthService   services.MonthServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	expenseRepo repositories.ExpenseRepositoryInterface,
	expenseService services.ExpenseServiceInterface,
	summaryService services.SummaryServiceInterface,
	monthService services.MonthServiceInterface,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseRepo:    expenseRepo,
		expenseService: expenseService,
		summaryService: summaryService,
		monthService:   monthService,
	}
}

// ListExpenses lists expense records, optionally filtered to one month
// @Summary List expenses
// @Description List expense records, newest first. With ?month=YYYY-MM only that month's records are returned.
// @Tags Expenses
// @Produce json
// @Param month query string false "Month filter (YYYY-MM)"
// @Success 200 {object} dto.ListExpensesResponse "Expense records"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Malformed month filter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	month := c.QueryParam("month")

	var (
		expenses []models.Expense
		err      error
	)
	if month == "" {
		expenses, err = h.expenseRepo.List()
	} else {
		if !isValidMonthKey(month) {
			return SendError(c, apierrors.ValidationInvalidFormat,
				apierrors.WithDetails("month must have the form YYYY-MM"))
		}
		expenses, err = h.expenseRepo.ListByMonth(month)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = toExpenseResponse(expense)
	}

	return c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Expenses: responses,
		Count:    len(responses),
	})
}

// GetDateRange reports the oldest and newest expense dates
// @Summary Get expense date range
// @Description Report the oldest and newest expense dates in the store. Both bounds are null when no expenses exist.
// @Tags Expenses
// @Produce json
// @Success 200 {object} dto.DateRangeResponse "Date range bounds"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/range [get]
func (h *ExpenseHandler) GetDateRange(c echo.Context) error {
	dateRange, err := h.expenseRepo.GetDateRange()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DateRangeResponse{
		MinDate: dateRange.MinDate,
		MaxDate: dateRange.MaxDate,
	})
}

// ListMonths returns the month navigation tabs, newest first
// @Summary List month tabs
// @Description Enumerate every month between the oldest and newest expense dates, newest first, with display labels.
// @Tags Expenses
// @Produce json
// @Success 200 {object} dto.ListMonthsResponse "Month tabs"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/months [get]
func (h *ExpenseHandler) ListMonths(c echo.Context) error {
	dateRange, err := h.expenseRepo.GetDateRange()
	if err != nil {
		return SendSystemError(c, err)
	}

	keys := h.monthService.MonthsBetween(dateRange)
	months := make([]dto.MonthTab, len(keys))
	for i, key := range keys {
		months[i] = dto.MonthTab{
			Key:   key,
			Label: h.monthService.MonthLabel(key),
		}
	}

	return c.JSON(http.StatusOK, dto.ListMonthsResponse{Months: months})
}

// Summarize aggregates one month's expenses by category or by user
// @Summary Summarize a month's expenses
// @Description Group one month's expense records by category or by the user they were paid for, with per-group and grand totals.
// @Tags Expenses
// @Produce json
// @Param month query string true "Month to summarize (YYYY-MM)"
// @Param by query string false "Grouping dimension" Enums(category, paidFor) default(category)
// @Success 200 {object} dto.SummaryResponse "Summary entries ordered by descending total"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Malformed month or grouping"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/summary [get]
func (h *ExpenseHandler) Summarize(c echo.Context) error {
	month := c.QueryParam("month")
	if !isValidMonthKey(month) {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("month must have the form YYYY-MM"))
	}

	by := c.QueryParam("by")
	if by == "" {
		by = "category"
	}
	if by != "category" && by != "paidFor" {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("by must be category or paidFor"))
	}

	expenses, err := h.expenseRepo.ListByMonth(month)
	if err != nil {
		return SendSystemError(c, err)
	}

	var summary models.ExpenseSummary
	if by == "paidFor" {
		summary = h.summaryService.SummarizeByPaidFor(expenses)
	} else {
		summary = h.summaryService.SummarizeByCategory(expenses)
	}

	entries := make([]dto.SummaryEntryResponse, len(summary.Entries))
	for i, entry := range summary.Entries {
		entries[i] = dto.SummaryEntryResponse{
			Key:   entry.Key,
			Total: entry.Total.String(),
		}
	}

	return c.JSON(http.StatusOK, dto.SummaryResponse{
		Month:      month,
		By:         by,
		Entries:    entries,
		GrandTotal: summary.GrandTotal.String(),
	})
}

// CreateExpense records a new expense
// @Summary Create an expense
// @Description Record a new expense. The paidFor user and category must exist at write time.
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body dto.ExpenseRequest true "Expense fields"
// @Success 201 {object} dto.CreateExpenseResponse "Created expense ID"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "EXPENSE_003 / EXPENSE_004 - Unknown user or category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	expense := toExpenseModel(req)
	if err := h.expenseService.Create(expense); err != nil {
		return h.sendWriteError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateExpenseResponse{ID: expense.ID})
}

// UpdateExpense fully replaces an existing expense
// @Summary Replace an expense
// @Description Replace every field of an existing expense record.
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body dto.ExpenseRequest true "Replacement fields"
// @Success 200 {object} dto.ExpenseResponse "Updated expense"
// @Failure 400 {object} errors.ErrorResponse "EXPENSE_002 - Invalid expense ID"
// @Failure 404 {object} errors.ErrorResponse "EXPENSE_001 - Expense not found"
// @Failure 422 {object} errors.ErrorResponse "EXPENSE_003 / EXPENSE_004 - Unknown user or category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	expense := toExpenseModel(req)
	expense.ID = id
	if err := h.expenseService.Update(expense); err != nil {
		return h.sendWriteError(c, err)
	}

	return c.JSON(http.StatusOK, toExpenseResponse(*expense))
}

// DeleteExpense permanently removes an expense
// @Summary Delete an expense
// @Description Permanently remove an expense record. There is no soft delete or undo.
// @Tags Expenses
// @Param id path int true "Expense ID"
// @Success 204 "Expense deleted"
// @Failure 400 {object} errors.ErrorResponse "EXPENSE_002 - Invalid expense ID"
// @Failure 404 {object} errors.ErrorResponse "EXPENSE_001 - Expense not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	if err := h.expenseService.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// sendWriteError maps service write failures to standardized error responses
func (h *ExpenseHandler) sendWriteError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrUnknownUser):
		return SendError(c, apierrors.ExpenseUnknownUser)
	case errors.Is(err, services.ErrUnknownCategory):
		return SendError(c, apierrors.ExpenseUnknownCategory)
	case errors.Is(err, repositories.ErrExpenseNotFound):
		return SendError(c, apierrors.ExpenseNotFound)
	case errors.Is(err, models.ErrInvalidDate):
		return SendError(c, apierrors.ValidationInvalidDate)
	case errors.Is(err, models.ErrNegativeAmount):
		return SendError(c, apierrors.ValidationInvalidAmount)
	case errors.Is(err, models.ErrMissingPaidFor), errors.Is(err, models.ErrMissingCategory):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

func toExpenseModel(req dto.ExpenseRequest) *models.Expense {
	expense := &models.Expense{
		Date:     req.Date,
		PaidFor:  req.PaidFor,
		Category: req.Category,
		Note:     req.Note,
	}
	if req.Amount != nil {
		expense.Amount = decimal.NewFromFloat(*req.Amount)
	}
	return expense
}

func toExpenseResponse(expense models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:       expense.ID,
		Date:     expense.Date,
		Amount:   expense.Amount.String(),
		PaidFor:  expense.PaidFor,
		Category: expense.Category,
		Note:     expense.Note,
	}
}
