package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/money_tracker/internal/apperrors"
)

// CategoryType restricts which transaction types a category is offered for.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
	CategoryBoth    CategoryType = "both"
)

// IsValid reports whether t is a known category type.
func (t CategoryType) IsValid() bool {
	return t == CategoryIncome || t == CategoryExpense || t == CategoryBoth
}

// Accepts reports whether a category of type t is offered for transactions of type tt.
func (t CategoryType) Accepts(tt TransactionType) bool {
	return t == CategoryBoth || string(t) == string(tt)
}

const (
	MaxCategoryNameLength = 50
	DefaultCategoryColor  = "#6366f1"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category is a user-defined label for transactions. Transactions refer to it by name.
type Category struct {
	CategoryID string       `json:"categoryID"`
	UserID     string       `json:"userID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Color      string       `json:"color"`
	IsDefault  bool         `json:"isDefault"` // Default categories cannot be deleted
	AuditFields
}

// Validate checks name, type and color.
func (c Category) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return fmt.Errorf("%w: category name must be at most %d characters", apperrors.ErrValidation, MaxCategoryNameLength)
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: category type must be income, expense or both", apperrors.ErrValidation)
	}
	if !colorPattern.MatchString(c.Color) {
		return fmt.Errorf("%w: color must look like #rrggbb", apperrors.ErrValidation)
	}
	return nil
}

// DefaultCategory is a seed entry for a new user's category list.
type DefaultCategory struct {
	Name  string
	Type  CategoryType
	Color string
}

// DefaultCategories are created for every user the first time their categories are listed.
var DefaultCategories = []DefaultCategory{
	{Name: "Salary", Type: CategoryIncome, Color: "#22c55e"},
	{Name: "Freelance", Type: CategoryIncome, Color: "#10b981"},
	{Name: "Investment", Type: CategoryIncome, Color: "#14b8a6"},
	{Name: "Other Income", Type: CategoryIncome, Color: "#84cc16"},
	{Name: "Food", Type: CategoryExpense, Color: "#f97316"},
	{Name: "Transport", Type: CategoryExpense, Color: "#3b82f6"},
	{Name: "Shopping", Type: CategoryExpense, Color: "#ec4899"},
	{Name: "Bills", Type: CategoryExpense, Color: "#ef4444"},
	{Name: "Entertainment", Type: CategoryExpense, Color: "#a855f7"},
	{Name: "Health", Type: CategoryExpense, Color: "#06b6d4"},
	{Name: "Education", Type: CategoryExpense, Color: "#eab308"},
	{Name: "Other Expense", Type: CategoryExpense, Color: "#64748b"},
}
