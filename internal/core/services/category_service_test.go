package services_test

import (
	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

func (s *serviceSuite) TestCategories_SeededOnFirstList() {
	all, err := s.categories.ListCategories(s.ctx, s.userID, "")
	s.Require().NoError(err)
	s.Len(all, len(domain.DefaultCategories))
	for _, c := range all {
		s.True(c.IsDefault)
	}

	created, err := s.categories.SeedDefaultCategories(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Zero(created, "seeding is idempotent")
}

func (s *serviceSuite) TestCategories_SeededAfterCustomCategory() {
	_, err := s.categories.CreateCategory(s.ctx, s.userID, dto.CreateCategoryRequest{Name: "Gifts", Type: domain.CategoryBoth})
	s.Require().NoError(err)
	// a custom category sharing a default name keeps its own type
	_, err = s.categories.CreateCategory(s.ctx, s.userID, dto.CreateCategoryRequest{Name: "food", Type: domain.CategoryBoth})
	s.Require().NoError(err)

	all, err := s.categories.ListCategories(s.ctx, s.userID, "")
	s.Require().NoError(err)
	s.Len(all, len(domain.DefaultCategories)+1)

	defaults := 0
	for _, c := range all {
		if c.IsDefault {
			defaults++
		}
	}
	s.Equal(len(domain.DefaultCategories)-1, defaults)

	again, err := s.categories.ListCategories(s.ctx, s.userID, "")
	s.Require().NoError(err)
	s.Len(again, len(all), "listing twice seeds nothing new")
}

func (s *serviceSuite) TestCategories_CreateFilterDelete() {
	gift, err := s.categories.CreateCategory(s.ctx, s.userID, dto.CreateCategoryRequest{Name: "Gifts", Type: domain.CategoryBoth})
	s.Require().NoError(err)
	s.Equal(domain.DefaultCategoryColor, gift.Color)

	_, err = s.categories.CreateCategory(s.ctx, s.userID, dto.CreateCategoryRequest{Name: "gifts", Type: domain.CategoryIncome})
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.ErrorIs(err, apperrors.ErrValidation)

	income, err := s.categories.ListCategories(s.ctx, s.userID, "income")
	s.Require().NoError(err)
	names := map[string]bool{}
	for _, c := range income {
		s.NotEqual(domain.CategoryExpense, c.Type)
		names[c.Name] = true
	}
	s.True(names["Gifts"], "income listing includes categories of type both")
	s.True(names["Salary"])

	_, err = s.categories.ListCategories(s.ctx, s.userID, "savings")
	s.ErrorIs(err, apperrors.ErrValidation)

	s.NoError(s.categories.DeleteCategory(s.ctx, s.userID, gift.CategoryID))
	s.ErrorIs(s.categories.DeleteCategory(s.ctx, s.userID, gift.CategoryID), apperrors.ErrNotFound)

	var salaryID string
	for _, c := range income {
		if c.Name == "Salary" {
			salaryID = c.CategoryID
		}
	}
	s.ErrorIs(s.categories.DeleteCategory(s.ctx, s.userID, salaryID), apperrors.ErrForbidden)
}
