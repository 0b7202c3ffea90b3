package profile

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Theme selects the UI appearance stored on the profile.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Profile represents a user profile record. Its ID is the auth user id.
type Profile struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"name"`
	Currency      string          `db:"currency"`
	MonthlyIncome decimal.Decimal `db:"monthly_income"`
	Theme         Theme           `db:"theme"`
	CreatedAt     time.Time       `db:"created_at"`
}

// ProfileUpdate replaces the mutable fields of a profile.
type ProfileUpdate struct {
	ID            uuid.UUID
	Name          string
	Currency      string
	MonthlyIncome decimal.Decimal
	Theme         Theme
}

// IProfileTable defines the interface for profile storage operations.
type IProfileTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, update *ProfileUpdate) error
}
