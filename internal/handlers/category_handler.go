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

// CategoryHandler handles expense category HTTP requests
type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryInterface) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// ListCategories lists all expense categories
// @Summary List categories
// @Description List every expense category with its emoji and color accent.
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse "Expense categories"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepo.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = toCategoryResponse(category)
	}

	return c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: responses})
}

// CreateCategory adds an expense category
// @Summary Create a category
// @Description Add an expense category with its emoji and color accent.
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category fields"
// @Success 201 {object} dto.CategoryResponse "Created category"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	category := &models.Category{
		Name:  req.Name,
		Emoji: req.Emoji,
		Color: req.Color,
	}
	if err := h.categoryRepo.Create(category); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(*category))
}

// UpdateCategory updates an expense category
// @Summary Update a category
// @Description Update a category's name, emoji, or color. Renaming detaches the category from already-written expense records.
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.CategoryRequest true "Replacement fields"
// @Success 200 {object} dto.CategoryResponse "Updated category"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_002 - Invalid category ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	category, err := h.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	category.Name = req.Name
	category.Emoji = req.Emoji
	category.Color = req.Color
	if err := h.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// DeleteCategory removes an expense category
// @Summary Delete a category
// @Description Remove a category. Historical expenses referencing the category by name are left untouched.
// @Tags Categories
// @Param id path int true "Category ID"
// @Success 204 "Category deleted"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_002 - Invalid category ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	if err := h.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toCategoryResponse(category models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Emoji:     category.Emoji,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
