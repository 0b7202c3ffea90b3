package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
)

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	ID     string `path:"id" doc:"Budget UUID"`
}

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct {
	Status int
}

// budgetDeleter is the interface for deleting budgets.
type budgetDeleter interface {
	DeleteBudget(ctx context.Context, id, userID uuid.UUID) error
}

// DeleteBudgetHandler handles DELETE /v1/budget/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/v1/budget/{id}",
		Summary:     "Delete budget",
		Description: "Removes a budget. Transactions in the category are unaffected.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	if err := h.BudgetService.DeleteBudget(ctx, id, userID); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete budget", err)
	}

	return &DeleteBudgetOutput{Status: http.StatusNoContent}, nil
}
