package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/storage"
)

// AddGoalFunds contributes an amount toward a savings goal. The goal row is
// locked for the read-modify-write so the stored amount can never exceed the
// target, whatever the caller supplied.
type AddGoalFunds struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal

	IAction
}

func (a *AddGoalFunds) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Amount.IsPositive() {
		return errors.New("contribution must be positive")
	}

	g, err := writer.Goals.FindByIDForUpdate(ctx, a.GoalID, a.UserID)
	if err != nil {
		return err
	}
	if g == nil {
		return errors.New("goal not found")
	}

	newAmount := g.CurrentAmount.Add(a.Amount)
	if newAmount.GreaterThan(g.TargetAmount) {
		newAmount = g.TargetAmount
	}
	completed := newAmount.GreaterThanOrEqual(g.TargetAmount)

	return writer.Goals.SetProgress(ctx, a.GoalID, a.UserID, newAmount, completed)
}
