package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/storage/profile"
)

// UpdateProfileBody is the request body for saving the profile.
type UpdateProfileBody struct {
	Name          string `json:"name" doc:"Display name"`
	Currency      string `json:"currency" required:"true" minLength:"3" maxLength:"3" doc:"ISO 4217 currency code"`
	MonthlyIncome string `json:"monthlyIncome" doc:"Decimal expected monthly income, defaults to 0"`
	Theme         string `json:"theme" required:"true" enum:"dark,light" doc:"UI theme"`
}

// UpdateProfileInput is the Huma input for saving the profile.
type UpdateProfileInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Body   UpdateProfileBody
}

// UpdateProfileOutput is the Huma output for saving the profile.
type UpdateProfileOutput struct {
	Status int
}

// profileUpdater is the interface for saving a profile.
type profileUpdater interface {
	UpdateProfile(ctx context.Context, update *profile.ProfileUpdate) error
}

// UpdateProfileHandler handles PUT /v1/profile.
type UpdateProfileHandler struct {
	ProfileService profileUpdater
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(svc profileUpdater) *UpdateProfileHandler {
	return &UpdateProfileHandler{ProfileService: svc}
}

// Register registers the update profile endpoint with the Huma API.
func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/v1/profile",
		Summary:     "Update profile",
		Description: "Saves the calling user's profile settings, creating them on first save.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	if input.Body.MonthlyIncome != "" {
		income, err = decimal.NewFromString(input.Body.MonthlyIncome)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid monthlyIncome", err)
		}
		if income.IsNegative() {
			return nil, huma.NewError(http.StatusBadRequest, "monthlyIncome must not be negative", nil)
		}
	}

	err = h.ProfileService.UpdateProfile(ctx, &profile.ProfileUpdate{
		ID:            userID,
		Name:          input.Body.Name,
		Currency:      input.Body.Currency,
		MonthlyIncome: income,
		Theme:         profile.Theme(input.Body.Theme),
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to save profile", err)
	}

	return &UpdateProfileOutput{Status: http.StatusNoContent}, nil
}
