package goal

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a savings goal record.
type SavingsGoal struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Name          string          `db:"name"`
	Icon          string          `db:"icon"`
	Color         string          `db:"color"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	TargetDate    *time.Time      `db:"target_date"`
	Completed     bool            `db:"completed"`
	CreatedAt     time.Time       `db:"created_at"`
}

// GoalCreate is the input for creating a new savings goal.
type GoalCreate struct {
	UserID        uuid.UUID
	Name          string
	Icon          string
	Color         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
}

// GoalUpdate replaces the mutable fields of an existing goal.
type GoalUpdate struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Icon          string
	Color         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	Completed     bool
}

// IGoalTable defines the interface for savings goal storage operations.
type IGoalTable interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*SavingsGoal, error)
	FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*SavingsGoal, error)
	Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error)
	Update(ctx context.Context, update *GoalUpdate) error
	SetProgress(ctx context.Context, id, userID uuid.UUID, current decimal.Decimal, completed bool) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*SavingsGoal, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}
