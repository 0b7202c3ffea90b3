package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flowi-app/flowi-server/internal/storage/profile"
)

// mockProfileService is a mock for profileGetter.
type mockProfileService struct {
	mock.Mock
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func newGetProfileTestAPI(t *testing.T, svc profileGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetProfileHandler(svc).Register(api)
	return api
}

func TestHTTP_GetProfile_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockProfileService)
	mockSvc.On("GetProfile", mock.Anything, userID).Return(&profile.Profile{
		ID:            userID,
		Name:          "Ana",
		Currency:      "EUR",
		MonthlyIncome: decimal.RequireFromString("2500"),
		Theme:         profile.ThemeLight,
	}, nil)

	resp := newGetProfileTestAPI(t, mockSvc).Get("/v1/profile", "X-User-ID: "+userID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Profile
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Ana", body.Name)
	assert.Equal(t, "EUR", body.Currency)
	assert.Equal(t, "2500", body.MonthlyIncome)
	assert.Contains(t, body.MonthlyIncomeDisplay, "€")
	assert.Equal(t, "light", body.Theme)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetProfile_MissingUserHeader(t *testing.T) {
	mockSvc := new(mockProfileService)

	resp := newGetProfileTestAPI(t, mockSvc).Get("/v1/profile")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "GetProfile")
}
