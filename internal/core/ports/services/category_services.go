package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// CategorySvcFacade manages the user's categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// ListCategories lists the user's categories, seeding the defaults on first use.
	// A type of income or expense also includes categories of type both.
	ListCategories(ctx context.Context, userID string, categoryType string) ([]domain.Category, error)

	// DeleteCategory deletes a non-default category.
	DeleteCategory(ctx context.Context, userID string, categoryID string) error

	// SeedDefaultCategories adds whichever default categories the user lacks.
	SeedDefaultCategories(ctx context.Context, userID string) (int, error)
}
