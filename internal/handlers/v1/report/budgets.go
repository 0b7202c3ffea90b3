package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/service"
)

// BudgetsInput is the Huma input for the budget progress report.
type BudgetsInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Month  int    `query:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month 1-12"`
	Year   int    `query:"year" required:"true" minimum:"2000" doc:"Calendar year"`
}

// BudgetProgress is the API model for one budget's progress.
type BudgetProgress struct {
	ID            string `json:"id" doc:"Budget UUID"`
	CategoryID    string `json:"categoryID" doc:"Budgeted category UUID"`
	CategoryName  string `json:"categoryName,omitempty" doc:"Category name, absent when the category no longer exists"`
	CategoryColor string `json:"categoryColor,omitempty" doc:"Category display color"`
	CategoryIcon  string `json:"categoryIcon,omitempty" doc:"Category icon identifier"`
	LimitAmount   string `json:"limitAmount" doc:"Decimal monthly limit"`
	Spent         string `json:"spent" doc:"Decimal spend on the category this month"`
	Pct           string `json:"pct" doc:"Spend as percent of the limit, clamped to 0-100"`
	Over          bool   `json:"over" doc:"True when spend exceeds the limit"`
}

// BudgetSummary is the API model for the period's budget totals. TotalSpent
// counts spend in unbudgeted categories too, so the numbers need not add up
// across the per-budget rows.
type BudgetSummary struct {
	TotalLimit string `json:"totalLimit" doc:"Decimal sum of all limits"`
	TotalSpent string `json:"totalSpent" doc:"Decimal expense total of the month"`
	Pct        string `json:"pct" doc:"Total spend as percent of total limit, clamped to 0-100"`
}

// BudgetsResponseBody is the response body for the budget progress report.
type BudgetsResponseBody struct {
	Budgets []BudgetProgress `json:"budgets" doc:"Per-budget progress, most consumed first"`
	Summary BudgetSummary    `json:"summary" doc:"Period totals"`
}

// BudgetsOutput is the Huma output for the budget progress report.
type BudgetsOutput struct {
	Body BudgetsResponseBody
}

// budgetReporter is the interface for computing budget progress.
type budgetReporter interface {
	BudgetOverview(ctx context.Context, userID uuid.UUID, month, year int) (*service.BudgetOverview, error)
}

// BudgetsHandler handles GET /v1/reports/budgets.
type BudgetsHandler struct {
	ReportService budgetReporter
}

// NewBudgetsHandler creates a new BudgetsHandler.
func NewBudgetsHandler(svc budgetReporter) *BudgetsHandler {
	return &BudgetsHandler{ReportService: svc}
}

// Register registers the budget report endpoint with the Huma API.
func (h *BudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/reports/budgets",
		Summary:     "Budget progress report",
		Description: "Derives per-budget spend and the period summary for one month.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *BudgetsHandler) handle(ctx context.Context, input *BudgetsInput) (*BudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetOverviewMs")
	}
	overview, err := h.ReportService.BudgetOverview(ctx, userID, input.Month, input.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute budget report", err)
	}

	budgets := make([]BudgetProgress, 0, len(overview.Budgets))
	for _, bp := range overview.Budgets {
		row := BudgetProgress{
			ID:          bp.Budget.ID.String(),
			CategoryID:  bp.Budget.CategoryID.String(),
			LimitAmount: bp.Budget.LimitAmount.String(),
			Spent:       bp.Spent.String(),
			Pct:         bp.Pct.Round(1).String(),
			Over:        bp.Over,
		}
		if bp.Category != nil {
			row.CategoryName = bp.Category.Name
			row.CategoryColor = bp.Category.Color
			row.CategoryIcon = bp.Category.Icon
		}
		budgets = append(budgets, row)
	}

	return &BudgetsOutput{
		Body: BudgetsResponseBody{
			Budgets: budgets,
			Summary: BudgetSummary{
				TotalLimit: overview.Summary.TotalLimit.String(),
				TotalSpent: overview.Summary.TotalSpent.String(),
				Pct:        overview.Summary.Pct.Round(1).String(),
			},
		},
	}, nil
}
