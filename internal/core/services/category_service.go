package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/events"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, options ...Option) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  newBaseService(options...),
		categoryRepo: repo,
	}
}

func (s *categoryService) newCategory(userID, name string, typ domain.CategoryType, color string, isDefault bool) domain.Category {
	now := s.Now()
	if color == "" {
		color = domain.DefaultCategoryColor
	}
	return domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       strings.TrimSpace(name),
		Type:       typ,
		Color:      color,
		IsDefault:  isDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := s.newCategory(userID, req.Name, req.Type, req.Color, false)
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %w: category %q already exists", apperrors.ErrValidation, apperrors.ErrDuplicate, category.Name)
		}
		s.LogError(ctx, err, "Failed to save category", slog.String("name", category.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	s.publish(ctx, events.CategoryCreated, userID, category.CategoryID, dto.ToCategoryResponse(&category))
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string, categoryType string) ([]domain.Category, error) {
	want := domain.CategoryType(strings.ToLower(strings.TrimSpace(categoryType)))
	if want != "" && !want.IsValid() {
		return nil, fmt.Errorf("%w: category type must be income, expense or both", apperrors.ErrValidation)
	}

	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("user_id", userID))
		return nil, err
	}
	if !hasDefaults(categories) {
		if _, err := s.SeedDefaultCategories(ctx, userID); err != nil {
			return nil, err
		}
		if categories, err = s.categoryRepo.ListCategories(ctx, userID); err != nil {
			return nil, err
		}
	}

	out := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		if want == "" || c.Type == want || (want != domain.CategoryBoth && c.Type == domain.CategoryBoth) {
			out = append(out, c)
		}
	}
	return out, nil
}

// hasDefaults reports whether the defaults were seeded. Defaults cannot be
// deleted, so one is enough.
func hasDefaults(categories []domain.Category) bool {
	for _, c := range categories {
		if c.IsDefault {
			return true
		}
	}
	return false
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if category.IsDefault {
		return fmt.Errorf("%w: default category %q cannot be deleted", apperrors.ErrForbidden, category.Name)
	}
	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		}
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	s.publish(ctx, events.CategoryDeleted, userID, categoryID, dto.ToCategoryResponse(category))
	return nil
}

func (s *categoryService) SeedDefaultCategories(ctx context.Context, userID string) (int, error) {
	seeds := make([]domain.Category, len(domain.DefaultCategories))
	for i, d := range domain.DefaultCategories {
		seeds[i] = s.newCategory(userID, d.Name, d.Type, d.Color, true)
	}
	created, err := s.categoryRepo.SaveCategoriesIfAbsent(ctx, userID, seeds)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed default categories", slog.String("user_id", userID))
		return 0, err
	}
	if created > 0 {
		s.LogInfo(ctx, "Default categories seeded", slog.Int("created", created))
	}
	return created, nil
}
