package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/storage"
	"github.com/flowi-app/flowi-server/internal/storage/goal"
)

// GoalService handles savings goal business logic. Funding a goal goes through
// the operator so the clamp happens under a row lock.
type GoalService struct {
	storage *storage.Storage
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *storage.Storage) *GoalService {
	return &GoalService{storage: store}
}

// CreateGoal creates a new savings goal and returns its ID.
func (s *GoalService) CreateGoal(ctx context.Context, create *goal.GoalCreate) (uuid.UUID, error) {
	return s.storage.Goals.Insert(ctx, create)
}

// UpdateGoal replaces the mutable fields of an existing goal. The completed
// flag is re-derived from the amounts rather than trusted from the caller.
func (s *GoalService) UpdateGoal(ctx context.Context, update *goal.GoalUpdate) error {
	update.Completed = update.CurrentAmount.GreaterThanOrEqual(update.TargetAmount)
	return s.storage.Goals.Update(ctx, update)
}

// DeleteGoal removes a goal.
func (s *GoalService) DeleteGoal(ctx context.Context, id, userID uuid.UUID) error {
	return s.storage.Goals.Delete(ctx, id, userID)
}

// ListGoals returns all of a user's goals, newest first.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]*goal.SavingsGoal, error) {
	return s.storage.Goals.ListByUser(ctx, userID)
}
