package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/storage"
	"github.com/flowi-app/flowi-server/internal/storage/budget"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// UpsertBudget creates a budget for a (category, month, year) or, when one
// already exists for that key, updates its limit instead of duplicating it.
func (s *BudgetService) UpsertBudget(ctx context.Context, upsert *budget.BudgetUpsert) (uuid.UUID, error) {
	return s.storage.Budgets.Upsert(ctx, upsert)
}

// UpdateBudgetLimit changes the limit of an existing budget. The category and
// period of a budget are immutable after creation.
func (s *BudgetService) UpdateBudgetLimit(ctx context.Context, id, userID uuid.UUID, limit decimal.Decimal) error {
	return s.storage.Budgets.UpdateLimit(ctx, id, userID, limit)
}

// DeleteBudget removes a budget.
func (s *BudgetService) DeleteBudget(ctx context.Context, id, userID uuid.UUID) error {
	return s.storage.Budgets.Delete(ctx, id, userID)
}

// ListBudgets returns a user's budgets for one (month, year).
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID, month, year int) ([]*budget.Budget, error) {
	return s.storage.Budgets.ListForPeriod(ctx, userID, month, year)
}
