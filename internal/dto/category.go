package dto

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required,notblank,max=50"`
	Type  domain.CategoryType `json:"type" binding:"required,oneof=income expense both"`
	Color string              `json:"color" binding:"omitempty,hexcolor"`
}

// ListCategoriesParams filters categories by the transaction type they serve.
type ListCategoriesParams struct {
	Type string `form:"type" binding:"omitempty,oneof=income expense both"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string              `json:"id"`
	Name       string              `json:"name"`
	Type       domain.CategoryType `json:"type"`
	Color      string              `json:"color"`
	IsDefault  bool                `json:"isDefault"`
}

// ToCategoryResponse converts a domain.Category.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       c.Type,
		Color:      c.Color,
		IsDefault:  c.IsDefault,
	}
}

// ToCategoryResponses converts a slice of domain.Category.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

// SeedCategoriesResponse reports how many default categories were added.
type SeedCategoriesResponse struct {
	Created int `json:"created"`
}
