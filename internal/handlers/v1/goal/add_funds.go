package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/operator"
	"github.com/flowi-app/flowi-server/internal/operator/actions"
)

// AddFundsBody is the request body for contributing to a goal.
type AddFundsBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal contribution, must be positive"`
}

// AddFundsInput is the Huma input for contributing to a goal.
type AddFundsInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	ID     string `path:"id" doc:"Goal UUID"`
	Body   AddFundsBody
}

// AddFundsOutput is the Huma output for contributing to a goal.
type AddFundsOutput struct {
	Status int
}

// AddFundsHandler handles POST /v1/goal/{id}/funds. The contribution runs
// through the operator so the saved amount is clamped to the target under a
// row lock.
type AddFundsHandler struct {
	Operator operator.Processor
}

// NewAddFundsHandler creates a new AddFundsHandler.
func NewAddFundsHandler(op operator.Processor) *AddFundsHandler {
	return &AddFundsHandler{Operator: op}
}

// Register registers the add funds endpoint with the Huma API.
func (h *AddFundsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-goal-funds",
		Method:      http.MethodPost,
		Path:        "/v1/goal/{id}/funds",
		Summary:     "Add funds to goal",
		Description: "Contributes an amount toward a savings goal, capped at the target.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *AddFundsHandler) handle(ctx context.Context, input *AddFundsInput) (*AddFundsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be positive", nil)
	}

	action := &actions.AddGoalFunds{
		GoalID: id,
		UserID: userID,
		Amount: amount,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("addGoalFundsMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to add funds", err)
	}

	return &AddFundsOutput{Status: http.StatusNoContent}, nil
}
