package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/storage/goal"
)

// UpdateGoalBody is the request body for updating a savings goal. The
// completed flag is derived server-side from the amounts.
type UpdateGoalBody struct {
	Name          string `json:"name" required:"true" minLength:"1" doc:"Goal name"`
	Icon          string `json:"icon" doc:"Icon identifier"`
	Color         string `json:"color" doc:"Display color (hex)"`
	TargetAmount  string `json:"targetAmount" required:"true" doc:"Decimal target amount, must be positive"`
	CurrentAmount string `json:"currentAmount" required:"true" doc:"Decimal saved amount"`
	TargetDate    string `json:"targetDate,omitempty" doc:"Optional target date (YYYY-MM-DD)"`
}

// UpdateGoalInput is the Huma input for updating a goal.
type UpdateGoalInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	ID     string `path:"id" doc:"Goal UUID"`
	Body   UpdateGoalBody
}

// UpdateGoalOutput is the Huma output for updating a goal.
type UpdateGoalOutput struct {
	Status int
}

// goalUpdater is the interface for updating goals.
type goalUpdater interface {
	UpdateGoal(ctx context.Context, update *goal.GoalUpdate) error
}

// UpdateGoalHandler handles PUT /v1/goal/{id}.
type UpdateGoalHandler struct {
	GoalService goalUpdater
}

// NewUpdateGoalHandler creates a new UpdateGoalHandler.
func NewUpdateGoalHandler(svc goalUpdater) *UpdateGoalHandler {
	return &UpdateGoalHandler{GoalService: svc}
}

// Register registers the update goal endpoint with the Huma API.
func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-goal",
		Method:      http.MethodPut,
		Path:        "/v1/goal/{id}",
		Summary:     "Update savings goal",
		Description: "Replaces the fields of an existing savings goal.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func parseUpdateGoalInput(input *UpdateGoalInput) (*goal.GoalUpdate, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	target, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}
	if !target.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "targetAmount must be positive", nil)
	}

	current, err := decimal.NewFromString(input.Body.CurrentAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid currentAmount", err)
	}
	if current.IsNegative() {
		return nil, huma.NewError(http.StatusBadRequest, "currentAmount must not be negative", nil)
	}

	var targetDate *time.Time
	if input.Body.TargetDate != "" {
		d, err := time.Parse("2006-01-02", input.Body.TargetDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid targetDate", err)
		}
		targetDate = &d
	}

	return &goal.GoalUpdate{
		ID:            id,
		UserID:        userID,
		Name:          input.Body.Name,
		Icon:          input.Body.Icon,
		Color:         input.Body.Color,
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    targetDate,
	}, nil
}

func (h *UpdateGoalHandler) handle(ctx context.Context, input *UpdateGoalInput) (*UpdateGoalOutput, error) {
	update, err := parseUpdateGoalInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.GoalService.UpdateGoal(ctx, update); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update goal", err)
	}

	return &UpdateGoalOutput{Status: http.StatusNoContent}, nil
}
