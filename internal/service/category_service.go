package service

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/category"
)

// CategoryService handles category business logic. Categories are never
// hard-deleted; they are the stable anchor budgets and expenses hang off.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns all categories ordered by id.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = Category{
			ID:        row.ID,
			Name:      row.Name,
			IsActive:  row.IsActive,
			CreatedAt: row.CreatedAt,
		}
	}

	return converted, nil
}

// CreateCategory creates a new category and returns its ID.
func (s *CategoryService) CreateCategory(ctx context.Context, name string, isActive bool) (int64, error) {
	return s.storage.Categories.Insert(ctx, &category.CategoryCreate{
		Name:     name,
		IsActive: isActive,
	})
}
