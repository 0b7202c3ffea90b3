package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/money"
	"github.com/flowi-app/flowi-server/internal/storage/profile"
)

// Profile is the API response model for the user's profile.
type Profile struct {
	Name                 string `json:"name" doc:"Display name"`
	Currency             string `json:"currency" doc:"ISO 4217 currency code"`
	MonthlyIncome        string `json:"monthlyIncome" doc:"Decimal expected monthly income"`
	MonthlyIncomeDisplay string `json:"monthlyIncomeDisplay" doc:"Monthly income formatted in the profile currency"`
	Theme                string `json:"theme" doc:"UI theme: dark or light"`
}

// GetProfileInput is the Huma input for fetching the profile.
type GetProfileInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
}

// GetProfileOutput is the Huma output for fetching the profile.
type GetProfileOutput struct {
	Body Profile
}

// profileGetter is the interface for loading a profile.
type profileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
}

// GetProfileHandler handles GET /v1/profile.
type GetProfileHandler struct {
	ProfileService profileGetter
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(svc profileGetter) *GetProfileHandler {
	return &GetProfileHandler{ProfileService: svc}
}

// Register registers the get profile endpoint with the Huma API.
func (h *GetProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/profile",
		Summary:     "Get profile",
		Description: "Fetches the calling user's profile. Users without saved settings get the defaults.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *GetProfileHandler) handle(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	row, err := h.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load profile", err)
	}

	return &GetProfileOutput{
		Body: Profile{
			Name:                 row.Name,
			Currency:             row.Currency,
			MonthlyIncome:        row.MonthlyIncome.String(),
			MonthlyIncomeDisplay: money.Format(row.MonthlyIncome, row.Currency),
			Theme:                string(row.Theme),
		},
	}, nil
}
