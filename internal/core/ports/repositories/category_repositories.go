package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CategoryReader defines read operations for categories
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error)

	// ListCategories returns all categories of a user ordered by name.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for categories
type CategoryWriter interface {
	// SaveCategory inserts a category. A case-insensitive name clash returns apperrors.ErrDuplicate.
	SaveCategory(ctx context.Context, category domain.Category) error

	// SaveCategoriesIfAbsent inserts the categories whose names the user does not
	// have yet and returns how many were created.
	SaveCategoriesIfAbsent(ctx context.Context, userID string, categories []domain.Category) (int, error)

	DeleteCategory(ctx context.Context, userID string, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
