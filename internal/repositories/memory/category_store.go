package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

func (s *Store) FindCategoryByID(_ context.Context, userID string, categoryID string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[categoryID]
	if !ok || c.UserID != userID {
		return nil, notFound("category", categoryID)
	}
	return &c, nil
}

func (s *Store) ListCategories(_ context.Context, userID string) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Category{}
	for _, c := range s.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (s *Store) categoryExistsLocked(userID, name string) bool {
	for _, c := range s.categories {
		if c.UserID == userID && sameName(c.Name, name) {
			return true
		}
	}
	return false
}

func (s *Store) SaveCategory(_ context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.categoryExistsLocked(category.UserID, category.Name) {
		return fmt.Errorf("%w: category named %q", apperrors.ErrDuplicate, category.Name)
	}
	s.categories[category.CategoryID] = category
	return nil
}

func (s *Store) SaveCategoriesIfAbsent(_ context.Context, userID string, categories []domain.Category) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := 0
	for _, c := range categories {
		if c.UserID != userID || s.categoryExistsLocked(userID, c.Name) {
			continue
		}
		s.categories[c.CategoryID] = c
		created++
	}
	return created, nil
}

func (s *Store) DeleteCategory(_ context.Context, userID string, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[categoryID]
	if !ok || c.UserID != userID {
		return notFound("category", categoryID)
	}
	delete(s.categories, categoryID)
	return nil
}
