package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"localfin/internal/dto"
	"localfin/internal/models"
	"localfin/internal/repositories"
	"localfin/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// CategoryHandlerTestSuite is the test suite for CategoryHandler
type CategoryHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCategoryRepo *repository_mocks.MockCategoryRepositoryInterface
	handler          *CategoryHandler
	echo             *echo.Echo
}

// SetupTest initializes the test suite before each test
func (s *CategoryHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockCategoryRepo)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest cleans up after each test
func (s *CategoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestCategoryHandlerSuite runs the test suite
func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

// TestListCategories_Success tests listing expense categories
func (s *CategoryHandlerTestSuite) TestListCategories_Success() {
	categories := []models.Category{
		{ID: 1, Name: "Groceries", Emoji: "🛒", Color: "green", CreatedAt: time.Now(), UpdatedAt: time.Now()},
		{ID: 2, Name: "Transport", Emoji: "🚌", Color: "blue", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	s.mockCategoryRepo.EXPECT().List().Return(categories, nil)

	c, rec := s.newContext(http.MethodGet, "/api/categories", "")
	err := s.handler.ListCategories(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListCategoriesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Categories, 2)
	s.Equal("Groceries", resp.Categories[0].Name)
	s.Equal("🚌", resp.Categories[1].Emoji)
}

// TestCreateCategory_Success tests adding an expense category
func (s *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	s.mockCategoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(category *models.Category) error {
		s.Equal("Health", category.Name)
		category.ID = 3
		return nil
	})

	c, rec := s.newContext(http.MethodPost, "/api/categories", `{"name":"Health","emoji":"💊","color":"red"}`)
	err := s.handler.CreateCategory(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CategoryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(3), resp.ID)
	s.Equal("Health", resp.Name)
}

// TestCreateCategory_MissingEmoji tests rejection when the emoji is absent
func (s *CategoryHandlerTestSuite) TestCreateCategory_MissingEmoji() {
	c, rec := s.newContext(http.MethodPost, "/api/categories", `{"name":"Health","color":"red"}`)
	err := s.handler.CreateCategory(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// TestUpdateCategory_Success tests renaming a category
func (s *CategoryHandlerTestSuite) TestUpdateCategory_Success() {
	existing := &models.Category{ID: 1, Name: "Groceries", Emoji: "🛒", Color: "green"}
	s.mockCategoryRepo.EXPECT().GetByID(int64(1)).Return(existing, nil)
	s.mockCategoryRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(category *models.Category) error {
		s.Equal("Food", category.Name)
		return nil
	})

	c, rec := s.newContext(http.MethodPut, "/api/categories/1", `{"name":"Food","emoji":"🍞","color":"green"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	err := s.handler.UpdateCategory(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CategoryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Food", resp.Name)
}

// TestUpdateCategory_NotFound tests updating a missing category
func (s *CategoryHandlerTestSuite) TestUpdateCategory_NotFound() {
	s.mockCategoryRepo.EXPECT().GetByID(int64(404)).Return(nil, repositories.ErrCategoryNotFound)

	c, rec := s.newContext(http.MethodPut, "/api/categories/404", `{"name":"Food","emoji":"🍞","color":"green"}`)
	c.SetParamNames("id")
	c.SetParamValues("404")
	err := s.handler.UpdateCategory(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("CATEGORY_001", resp.Error.Code)
}

// TestDeleteCategory_Success tests removing a category
func (s *CategoryHandlerTestSuite) TestDeleteCategory_Success() {
	s.mockCategoryRepo.EXPECT().Delete(int64(2)).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/categories/2", "")
	c.SetParamNames("id")
	c.SetParamValues("2")
	err := s.handler.DeleteCategory(c)

	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
}

// TestDeleteCategory_NotFound tests deleting a missing category
func (s *CategoryHandlerTestSuite) TestDeleteCategory_NotFound() {
	s.mockCategoryRepo.EXPECT().Delete(int64(404)).Return(repositories.ErrCategoryNotFound)

	c, rec := s.newContext(http.MethodDelete, "/api/categories/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")
	err := s.handler.DeleteCategory(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}
