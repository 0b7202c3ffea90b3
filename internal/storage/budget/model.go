package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for one category.
type Budget struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	CategoryID  uuid.UUID       `db:"category_id"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	Month       int             `db:"month"`
	Year        int             `db:"year"`
	CreatedAt   time.Time       `db:"created_at"`
}

// BudgetUpsert is the input for creating a budget. The store enforces at most
// one budget per (user, category, month, year); a second create for the same
// key updates the limit on the existing row.
type BudgetUpsert struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	LimitAmount decimal.Decimal
	Month       int
	Year        int
}

// IBudgetTable defines the interface for budget storage operations.
type IBudgetTable interface {
	Upsert(ctx context.Context, upsert *BudgetUpsert) (uuid.UUID, error)
	UpdateLimit(ctx context.Context, id, userID uuid.UUID, limit decimal.Decimal) error
	ListForPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*Budget, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}
