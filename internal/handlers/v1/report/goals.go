package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/service"
)

// GoalsInput is the Huma input for the goal progress report.
type GoalsInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
}

// GoalProgress is the API model for one goal's progress.
type GoalProgress struct {
	ID            string `json:"id" doc:"Goal UUID"`
	Name          string `json:"name" doc:"Goal name"`
	Icon          string `json:"icon" doc:"Icon identifier"`
	Color         string `json:"color" doc:"Display color (hex)"`
	TargetAmount  string `json:"targetAmount" doc:"Decimal target amount"`
	CurrentAmount string `json:"currentAmount" doc:"Decimal saved amount"`
	TargetDate    string `json:"targetDate,omitempty" doc:"Optional target date (YYYY-MM-DD)"`
	Completed     bool   `json:"completed" doc:"True once the target is reached"`
	Pct           string `json:"pct" doc:"Saved amount as percent of target, clamped to 0-100"`
	Remaining     string `json:"remaining" doc:"Decimal amount still to save"`
}

// GoalSummary is the API model for the aggregate goal totals.
type GoalSummary struct {
	TotalSaved     string `json:"totalSaved" doc:"Decimal sum of saved amounts"`
	TotalTarget    string `json:"totalTarget" doc:"Decimal sum of targets"`
	Pct            string `json:"pct" doc:"Total saved as percent of total target"`
	CompletedCount int    `json:"completedCount" doc:"Number of completed goals"`
}

// GoalsResponseBody is the response body for the goal progress report.
type GoalsResponseBody struct {
	Goals   []GoalProgress `json:"goals" doc:"Per-goal progress, newest goal first"`
	Summary GoalSummary    `json:"summary" doc:"Aggregate totals"`
}

// GoalsOutput is the Huma output for the goal progress report.
type GoalsOutput struct {
	Body GoalsResponseBody
}

// goalReporter is the interface for computing goal progress.
type goalReporter interface {
	GoalOverview(ctx context.Context, userID uuid.UUID) (*service.GoalOverview, error)
}

// GoalsHandler handles GET /v1/reports/goals.
type GoalsHandler struct {
	ReportService goalReporter
}

// NewGoalsHandler creates a new GoalsHandler.
func NewGoalsHandler(svc goalReporter) *GoalsHandler {
	return &GoalsHandler{ReportService: svc}
}

// Register registers the goal report endpoint with the Huma API.
func (h *GoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-goals",
		Method:      http.MethodGet,
		Path:        "/v1/reports/goals",
		Summary:     "Goal progress report",
		Description: "Derives per-goal and aggregate savings progress.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GoalsHandler) handle(ctx context.Context, input *GoalsInput) (*GoalsOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	overview, err := h.ReportService.GoalOverview(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute goal report", err)
	}

	goals := make([]GoalProgress, 0, len(overview.Goals))
	for _, gp := range overview.Goals {
		row := GoalProgress{
			ID:            gp.Goal.ID.String(),
			Name:          gp.Goal.Name,
			Icon:          gp.Goal.Icon,
			Color:         gp.Goal.Color,
			TargetAmount:  gp.Goal.TargetAmount.String(),
			CurrentAmount: gp.Goal.CurrentAmount.String(),
			Completed:     gp.Goal.Completed,
			Pct:           gp.Pct.Round(1).String(),
			Remaining:     gp.Remaining.String(),
		}
		if gp.Goal.TargetDate != nil {
			row.TargetDate = gp.Goal.TargetDate.Format("2006-01-02")
		}
		goals = append(goals, row)
	}

	return &GoalsOutput{
		Body: GoalsResponseBody{
			Goals: goals,
			Summary: GoalSummary{
				TotalSaved:     overview.Summary.TotalSaved.String(),
				TotalTarget:    overview.Summary.TotalTarget.String(),
				Pct:            overview.Summary.Pct.Round(1).String(),
				CompletedCount: overview.Summary.CompletedCount,
			},
		},
	}, nil
}
