package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/storage/goal"
)

// ListGoalsInput is the Huma input for listing goals.
type ListGoalsInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
}

// ListGoalsResponseBody is the response body for listing goals.
type ListGoalsResponseBody struct {
	Goals []SavingsGoal `json:"goals" doc:"All goals of the user, newest first"`
}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

// goalLister is the interface for listing goals.
type goalLister interface {
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*goal.SavingsGoal, error)
}

// ListGoalsHandler handles GET /v1/goals.
type ListGoalsHandler struct {
	GoalService goalLister
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

// Register registers the list goals endpoint with the Huma API.
func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goals",
		Summary:     "List savings goals",
		Description: "Lists all savings goals of the calling user.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	rows, err := h.GoalService.ListGoals(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list goals", err)
	}

	out := make([]SavingsGoal, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAPI(row))
	}

	return &ListGoalsOutput{
		Body: ListGoalsResponseBody{Goals: out},
	}, nil
}
