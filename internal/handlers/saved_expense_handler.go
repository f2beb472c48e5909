package handlers

import (
	"errors"
	"net/http"

	"localfin/internal/dto"
	apierrors "localfin/internal/errors"
	"localfin/internal/models"
	"localfin/internal/repositories"

	"github.com/labstack/echo/v4"
)

// SavedExpenseHandler handles saved expense prototype HTTP requests
type SavedExpenseHandler struct {
	savedRepo repositories.SavedExpenseRepositoryInterface
}

// NewSavedExpenseHandler creates a new saved expense handler
func NewSavedExpenseHandler(savedRepo repositories.SavedExpenseRepositoryInterface) *SavedExpenseHandler {
	return &SavedExpenseHandler{savedRepo: savedRepo}
}

// ListSavedExpenses lists all saved expense prototypes
// @Summary List saved expenses
// @Description List every saved expense prototype used to prefill the add-expense form.
// @Tags SavedExpenses
// @Produce json
// @Success 200 {object} dto.ListSavedExpensesResponse "Saved expense prototypes"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /saved-expenses [get]
func (h *SavedExpenseHandler) ListSavedExpenses(c echo.Context) error {
	saved, err := h.savedRepo.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.SavedExpenseResponse, len(saved))
	for i, s := range saved {
		responses[i] = toSavedExpenseResponse(s)
	}

	return c.JSON(http.StatusOK, dto.ListSavedExpensesResponse{SavedExpenses: responses})
}

// CreateSavedExpense adds a saved expense prototype
// @Summary Create a saved expense
// @Description Add a reusable prototype for prefilling the add-expense form. No reference checks are applied.
// @Tags SavedExpenses
// @Accept json
// @Produce json
// @Param request body dto.SavedExpenseRequest true "Saved expense fields"
// @Success 201 {object} dto.SavedExpenseResponse "Created saved expense"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /saved-expenses [post]
func (h *SavedExpenseHandler) CreateSavedExpense(c echo.Context) error {
	var req dto.SavedExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	saved := &models.SavedExpense{
		Category: req.Category,
		PaidFor:  req.PaidFor,
		Note:     req.Note,
	}
	if err := h.savedRepo.Create(saved); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toSavedExpenseResponse(*saved))
}

// UpdateSavedExpense updates a saved expense prototype
// @Summary Update a saved expense
// @Description Replace the fields of a saved expense prototype.
// @Tags SavedExpenses
// @Accept json
// @Produce json
// @Param id path int true "Saved expense ID"
// @Param request body dto.SavedExpenseRequest true "Replacement fields"
// @Success 200 {object} dto.SavedExpenseResponse "Updated saved expense"
// @Failure 400 {object} errors.ErrorResponse "SAVED_002 - Invalid saved expense ID"
// @Failure 404 {object} errors.ErrorResponse "SAVED_001 - Saved expense not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /saved-expenses/{id} [put]
func (h *SavedExpenseHandler) UpdateSavedExpense(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return SendError(c, apierrors.SavedExpenseInvalidID)
	}

	var req dto.SavedExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	saved, err := h.savedRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSavedExpenseNotFound) {
			return SendError(c, apierrors.SavedExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	saved.Category = req.Category
	saved.PaidFor = req.PaidFor
	saved.Note = req.Note
	if err := h.savedRepo.Update(saved); err != nil {
		if errors.Is(err, repositories.ErrSavedExpenseNotFound) {
			return SendError(c, apierrors.SavedExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toSavedExpenseResponse(*saved))
}

// DeleteSavedExpense removes a saved expense prototype
// @Summary Delete a saved expense
// @Description Remove a saved expense prototype.
// @Tags SavedExpenses
// @Param id path int true "Saved expense ID"
// @Success 204 "Saved expense deleted"
// @Failure 400 {object} errors.ErrorResponse "SAVED_002 - Invalid saved expense ID"
// @Failure 404 {object} errors.ErrorResponse "SAVED_001 - Saved expense not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /saved-expenses/{id} [delete]
func (h *SavedExpenseHandler) DeleteSavedExpense(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return SendError(c, apierrors.SavedExpenseInvalidID)
	}

	if err := h.savedRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrSavedExpenseNotFound) {
			return SendError(c, apierrors.SavedExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toSavedExpenseResponse(saved models.SavedExpense) dto.SavedExpenseResponse {
	return dto.SavedExpenseResponse{
		ID:        saved.ID,
		Category:  saved.Category,
		PaidFor:   saved.PaidFor,
		Note:      saved.Note,
		CreatedAt: saved.CreatedAt,
	}
}
