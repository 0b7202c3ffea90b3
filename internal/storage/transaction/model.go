package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Type tags a transaction as money in or money out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Type        Type            `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	CategoryID  *uuid.UUID      `db:"category_id"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	Notes       *string         `db:"notes"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      uuid.UUID
	Type        Type
	Amount      decimal.Decimal
	CategoryID  *uuid.UUID
	Date        time.Time
	Description string
	Notes       *string
}

// TransactionUpdate replaces the mutable fields of an existing transaction.
type TransactionUpdate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        Type
	Amount      decimal.Decimal
	CategoryID  *uuid.UUID
	Date        time.Time
	Description string
	Notes       *string
}

// TransactionFilter specifies filters for listing transactions. All predicates
// are conjunctions of equality and inclusive date bounds.
type TransactionFilter struct {
	UserID     uuid.UUID
	Type       *Type
	CategoryID *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, update *TransactionUpdate) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}
