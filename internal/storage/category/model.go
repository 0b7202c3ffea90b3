package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Type restricts which transaction types a category applies to.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
	TypeBoth    Type = "both"
)

// Category represents a category record.
type Category struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	Color     string    `db:"color"`
	Type      Type      `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID uuid.UUID
	Name   string
	Icon   string
	Color  string
	Type   Type
}

// CategoryUpdate replaces the mutable fields of an existing category.
type CategoryUpdate struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Icon   string
	Color  string
	Type   Type
}

// ICategoryTable defines the interface for category storage operations.
type ICategoryTable interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	Update(ctx context.Context, update *CategoryUpdate) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
