package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
)

// UpdateBudgetBody is the request body for changing a budget's limit. The
// category and period of a budget are fixed at creation.
type UpdateBudgetBody struct {
	LimitAmount string `json:"limitAmount" required:"true" doc:"Decimal monthly limit, must be positive"`
}

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	ID     string `path:"id" doc:"Budget UUID"`
	Body   UpdateBudgetBody
}

// UpdateBudgetOutput is the Huma output for updating a budget.
type UpdateBudgetOutput struct {
	Status int
}

// budgetLimitUpdater is the interface for updating a budget's limit.
type budgetLimitUpdater interface {
	UpdateBudgetLimit(ctx context.Context, id, userID uuid.UUID, limit decimal.Decimal) error
}

// UpdateBudgetHandler handles PATCH /v1/budget/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetLimitUpdater
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(svc budgetLimitUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPatch,
		Path:        "/v1/budget/{id}",
		Summary:     "Update budget limit",
		Description: "Changes the monthly limit of an existing budget.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	limit, err := decimal.NewFromString(input.Body.LimitAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid limitAmount", err)
	}
	if !limit.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "limitAmount must be positive", nil)
	}

	if err := h.BudgetService.UpdateBudgetLimit(ctx, id, userID, limit); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update budget", err)
	}

	return &UpdateBudgetOutput{Status: http.StatusNoContent}, nil
}
