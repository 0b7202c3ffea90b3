package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/storage"
	"github.com/flowi-app/flowi-server/internal/storage/category"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// CreateCategory creates a new category and returns its ID.
func (s *CategoryService) CreateCategory(ctx context.Context, create *category.CategoryCreate) (uuid.UUID, error) {
	return s.storage.Categories.Insert(ctx, create)
}

// UpdateCategory replaces the mutable fields of an existing category.
func (s *CategoryService) UpdateCategory(ctx context.Context, update *category.CategoryUpdate) error {
	return s.storage.Categories.Update(ctx, update)
}

// DeleteCategory removes a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id, userID uuid.UUID) error {
	return s.storage.Categories.Delete(ctx, id, userID)
}

// ListCategories returns all of a user's categories.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]*category.Category, error) {
	return s.storage.Categories.ListByUser(ctx, userID)
}
