package report

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

	"github.com/flowi-app/flowi-server/internal/service"
	"github.com/flowi-app/flowi-server/internal/storage/budget"
	"github.com/flowi-app/flowi-server/internal/storage/category"
)

// mockBudgetReporter is a mock for budgetReporter.
type mockBudgetReporter struct {
	mock.Mock
}

func (m *mockBudgetReporter) BudgetOverview(ctx context.Context, userID uuid.UUID, month, year int) (*service.BudgetOverview, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BudgetOverview), args.Error(1)
}

func newBudgetsTestAPI(t *testing.T, svc budgetReporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewBudgetsHandler(svc).Register(api)
	return api
}

func TestHTTP_ReportBudgets_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	cat := &category.Category{ID: uuid.Must(uuid.NewV4()), Name: "Comida", Color: "#ff0000"}
	b := &budget.Budget{
		ID:          uuid.Must(uuid.NewV4()),
		CategoryID:  cat.ID,
		LimitAmount: decimal.RequireFromString("200"),
		Month:       3,
		Year:        2024,
	}

	overview := &service.BudgetOverview{
		Budgets: []service.BudgetProgress{
			{
				Budget:   b,
				Category: cat,
				Spent:    decimal.RequireFromString("250"),
				Pct:      decimal.RequireFromString("100"),
				Over:     true,
			},
		},
		Summary: service.BudgetSummary{
			TotalLimit: decimal.RequireFromString("200"),
			TotalSpent: decimal.RequireFromString("250"),
			Pct:        decimal.RequireFromString("100"),
		},
	}

	mockSvc := new(mockBudgetReporter)
	mockSvc.On("BudgetOverview", mock.Anything, userID, 3, 2024).Return(overview, nil)

	resp := newBudgetsTestAPI(t, mockSvc).Get("/v1/reports/budgets?month=3&year=2024",
		"X-User-ID: "+userID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BudgetsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Budgets, 1)
	assert.Equal(t, "Comida", body.Budgets[0].CategoryName)
	assert.Equal(t, "100", body.Budgets[0].Pct)
	assert.True(t, body.Budgets[0].Over)
	assert.Equal(t, "250", body.Summary.TotalSpent)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ReportBudgets_UnresolvedCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	b := &budget.Budget{
		ID:          uuid.Must(uuid.NewV4()),
		CategoryID:  uuid.Must(uuid.NewV4()),
		LimitAmount: decimal.RequireFromString("100"),
	}

	overview := &service.BudgetOverview{
		Budgets: []service.BudgetProgress{
			{Budget: b, Spent: decimal.Zero, Pct: decimal.Zero},
		},
	}

	mockSvc := new(mockBudgetReporter)
	mockSvc.On("BudgetOverview", mock.Anything, userID, 1, 2024).Return(overview, nil)

	resp := newBudgetsTestAPI(t, mockSvc).Get("/v1/reports/budgets?month=1&year=2024",
		"X-User-ID: "+userID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BudgetsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Budgets[0].CategoryName)
}

func TestHTTP_ReportBudgets_InvalidMonth(t *testing.T) {
	mockSvc := new(mockBudgetReporter)

	// Huma minimum/maximum validation rejects the request before the handler runs.
	resp := newBudgetsTestAPI(t, mockSvc).Get("/v1/reports/budgets?month=13&year=2024",
		"X-User-ID: "+uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "BudgetOverview")
}
