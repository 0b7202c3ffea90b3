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

// CreateGoalBody is the request body for creating a savings goal.
type CreateGoalBody struct {
	Name          string `json:"name" required:"true" minLength:"1" doc:"Goal name"`
	Icon          string `json:"icon" doc:"Icon identifier"`
	Color         string `json:"color" doc:"Display color (hex)"`
	TargetAmount  string `json:"targetAmount" required:"true" doc:"Decimal target amount, must be positive"`
	CurrentAmount string `json:"currentAmount,omitempty" doc:"Decimal starting amount, defaults to 0"`
	TargetDate    string `json:"targetDate,omitempty" doc:"Optional target date (YYYY-MM-DD)"`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Body   CreateGoalBody
}

// CreateGoalResponse is the response body for creating a goal.
type CreateGoalResponse struct {
	ID string `json:"id" doc:"Created goal UUID"`
}

// CreateGoalOutput is the Huma output for creating a goal.
type CreateGoalOutput struct {
	Status int
	Body   CreateGoalResponse
}

// goalCreator is the interface for creating goals.
type goalCreator interface {
	CreateGoal(ctx context.Context, create *goal.GoalCreate) (uuid.UUID, error)
}

// CreateGoalHandler handles POST /v1/goal.
type CreateGoalHandler struct {
	GoalService goalCreator
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

// Register registers the create goal endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goal",
		Summary:     "Create savings goal",
		Description: "Creates a new savings goal for the calling user.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func parseCreateGoalInput(input *CreateGoalInput) (*goal.GoalCreate, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	target, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}
	if !target.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "targetAmount must be positive", nil)
	}

	current := decimal.Zero
	if input.Body.CurrentAmount != "" {
		current, err = decimal.NewFromString(input.Body.CurrentAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid currentAmount", err)
		}
		if current.IsNegative() {
			return nil, huma.NewError(http.StatusBadRequest, "currentAmount must not be negative", nil)
		}
	}

	var targetDate *time.Time
	if input.Body.TargetDate != "" {
		d, err := time.Parse("2006-01-02", input.Body.TargetDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid targetDate", err)
		}
		targetDate = &d
	}

	return &goal.GoalCreate{
		UserID:        userID,
		Name:          input.Body.Name,
		Icon:          input.Body.Icon,
		Color:         input.Body.Color,
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    targetDate,
	}, nil
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	create, err := parseCreateGoalInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.GoalService.CreateGoal(ctx, create)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create goal", err)
	}

	return &CreateGoalOutput{
		Status: http.StatusCreated,
		Body:   CreateGoalResponse{ID: id.String()},
	}, nil
}
