package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/money"
	"github.com/flowi-app/flowi-server/internal/service"
	"github.com/flowi-app/flowi-server/internal/storage/profile"
)

// DashboardInput is the Huma input for the dashboard report.
type DashboardInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Date   string `query:"date" doc:"Reference date (YYYY-MM-DD), defaults to today"`
}

// RecentTransaction is the API model for a dashboard list row.
type RecentTransaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Type        string `json:"type" doc:"Transaction type: income or expense"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Date        string `json:"date" doc:"Transaction date (YYYY-MM-DD)"`
	Description string `json:"description" doc:"Short description"`
}

// DashboardResponseBody is the response body for the dashboard report.
type DashboardResponseBody struct {
	Summary        MonthSummary        `json:"summary" doc:"Totals for the reference month"`
	BalanceDisplay string              `json:"balanceDisplay" doc:"Balance formatted in the profile currency"`
	Trend          []TrendPoint        `json:"trend" doc:"Six-month income/expense series, oldest first"`
	Breakdown      []BreakdownEntry    `json:"breakdown" doc:"Top expense categories of the month, at most six"`
	Recent         []RecentTransaction `json:"recent" doc:"Most recent transactions, newest first"`
	MonthCount     int                 `json:"monthCount" doc:"Number of transactions in the reference month"`
	BiggestExpense string              `json:"biggestExpense" doc:"Largest single expense of the month"`
	DailyAverage   string              `json:"dailyAverage" doc:"Month's expenses divided by days elapsed"`
}

// DashboardOutput is the Huma output for the dashboard report.
type DashboardOutput struct {
	Body DashboardResponseBody
}

// dashboardReporter is the interface for computing the dashboard.
type dashboardReporter interface {
	Dashboard(ctx context.Context, userID uuid.UUID, ref time.Time) (*service.Dashboard, error)
}

// profileGetter is the interface for loading the profile currency.
type profileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
}

// DashboardHandler handles GET /v1/reports/dashboard.
type DashboardHandler struct {
	ReportService  dashboardReporter
	ProfileService profileGetter
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reports dashboardReporter, profiles profileGetter) *DashboardHandler {
	return &DashboardHandler{ReportService: reports, ProfileService: profiles}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *DashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/reports/dashboard",
		Summary:     "Dashboard report",
		Description: "Derives the month summary, six-month trend, and expense breakdown for the reference date.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *DashboardHandler) handle(ctx context.Context, input *DashboardInput) (*DashboardOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	ref := time.Now().UTC()
	if input.Date != "" {
		ref, err = time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardMs")
	}
	dash, err := h.ReportService.Dashboard(ctx, userID, ref)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute dashboard", err)
	}

	prof, err := h.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load profile", err)
	}

	recent := make([]RecentTransaction, 0, len(dash.Recent))
	for _, tx := range dash.Recent {
		recent = append(recent, RecentTransaction{
			ID:          tx.ID.String(),
			Type:        string(tx.Type),
			Amount:      tx.Amount.String(),
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
		})
	}

	return &DashboardOutput{
		Body: DashboardResponseBody{
			Summary:        toSummaryAPI(dash.Summary),
			BalanceDisplay: money.Format(dash.Summary.Balance, prof.Currency),
			Trend:          toTrendAPI(dash.Trend),
			Breakdown:      toBreakdownAPI(dash.Breakdown),
			Recent:         recent,
			MonthCount:     dash.MonthCount,
			BiggestExpense: dash.BiggestExpense.String(),
			DailyAverage:   dash.DailyAverage.Round(2).String(),
		},
	}, nil
}
