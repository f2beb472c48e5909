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

// UserHandler handles household member HTTP requests
type UserHandler struct {
	userRepo repositories.UserRepositoryInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo repositories.UserRepositoryInterface) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// ListUsers lists all household members
// @Summary List users
// @Description List every household member expenses can be recorded for.
// @Tags Users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse "Household members"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userRepo.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = dto.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Color:     user.Color,
			CreatedAt: user.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, dto.ListUsersResponse{Users: responses})
}

// CreateUser adds a household member
// @Summary Create a user
// @Description Add a household member with a display color.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.UserRequest true "User fields"
// @Success 201 {object} dto.UserResponse "Created user"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.UserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	user := &models.User{
		Name:  req.Name,
		Color: req.Color,
	}
	if err := h.userRepo.Create(user); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Color:     user.Color,
		CreatedAt: user.CreatedAt,
	})
}

// DeleteUser removes a household member
// @Summary Delete a user
// @Description Remove a household member. Historical expenses referencing the user by name are left untouched.
// @Tags Users
// @Param id path int true "User ID"
// @Success 204 "User deleted"
// @Failure 400 {object} errors.ErrorResponse "USER_002 - Invalid user ID"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return SendError(c, apierrors.UserInvalidID)
	}

	if err := h.userRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return SendError(c, apierrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
