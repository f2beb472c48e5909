package repositories

import (
	"testing"

	"localfin/internal/database"
	"localfin/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestSavedExpenseRepository(t *testing.T) {
	suite.Run(t, new(SavedExpenseRepositorySuite))
}

type SavedExpenseRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo SavedExpenseRepositoryInterface
}

func (s *SavedExpenseRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSavedExpenseRepository(s.db.DB)
}

func (s *SavedExpenseRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SavedExpenseRepositorySuite) TestCreateAndList() {
	saved := &models.SavedExpense{Category: "Groceries", PaidFor: "both", Note: "weekly shop"}
	s.Require().NoError(s.repo.Create(saved))
	s.NotZero(saved.ID)

	list, err := s.repo.List()
	s.NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Groceries", list[0].Category)
	s.Equal("both", list[0].PaidFor)
}

func (s *SavedExpenseRepositorySuite) TestCreate_MissingCategoryRejected() {
	s.ErrorIs(s.repo.Create(&models.SavedExpense{PaidFor: "ido"}), models.ErrMissingSavedCategory)
}

func (s *SavedExpenseRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(77)
	s.ErrorIs(err, ErrSavedExpenseNotFound)
}

func (s *SavedExpenseRepositorySuite) TestUpdate() {
	saved := &models.SavedExpense{Category: "Groceries", PaidFor: "ido"}
	s.Require().NoError(s.repo.Create(saved))

	saved.Category = "Dining"
	saved.Note = "friday dinner"
	s.NoError(s.repo.Update(saved))

	found, err := s.repo.GetByID(saved.ID)
	s.NoError(err)
	s.Equal("Dining", found.Category)
	s.Equal("friday dinner", found.Note)
}

func (s *SavedExpenseRepositorySuite) TestUpdate_NotFound() {
	s.ErrorIs(s.repo.Update(&models.SavedExpense{ID: 77, Category: "x"}), ErrSavedExpenseNotFound)
}

func (s *SavedExpenseRepositorySuite) TestDelete() {
	saved := &models.SavedExpense{Category: "Groceries"}
	s.Require().NoError(s.repo.Create(saved))

	s.NoError(s.repo.Delete(saved.ID))
	s.ErrorIs(s.repo.Delete(saved.ID), ErrSavedExpenseNotFound)
}
