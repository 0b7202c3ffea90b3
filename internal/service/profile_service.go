package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/storage"
	"github.com/flowi-app/flowi-server/internal/storage/profile"
)

// ProfileService handles profile business logic.
type ProfileService struct {
	storage *storage.Storage
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store *storage.Storage) *ProfileService {
	return &ProfileService{storage: store}
}

// GetProfile retrieves a user's profile. A user who has never saved settings
// gets the defaults instead of an error.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	row, err := s.storage.Profiles.FindByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &profile.Profile{
			ID:            userID,
			Currency:      "USD",
			MonthlyIncome: decimal.Zero,
			Theme:         profile.ThemeDark,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateProfile writes the profile row, creating it on first save.
func (s *ProfileService) UpdateProfile(ctx context.Context, update *profile.ProfileUpdate) error {
	return s.storage.Profiles.Upsert(ctx, update)
}
