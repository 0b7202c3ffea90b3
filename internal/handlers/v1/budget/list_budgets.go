package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/storage/budget"
)

// ListBudgetsInput is the Huma input for listing budgets of one period.
type ListBudgetsInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Month  int    `query:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month 1-12"`
	Year   int    `query:"year" required:"true" minimum:"2000" doc:"Calendar year"`
}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Budgets []Budget `json:"budgets" doc:"Budgets of the requested month"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// budgetLister is the interface for listing budgets.
type budgetLister interface {
	ListBudgets(ctx context.Context, userID uuid.UUID, month, year int) ([]*budget.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Description: "Lists the calling user's budgets for one month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	rows, err := h.BudgetService.ListBudgets(ctx, userID, input.Month, input.Year)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list budgets", err)
	}

	out := make([]Budget, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAPI(row))
	}

	return &ListBudgetsOutput{
		Body: ListBudgetsResponseBody{Budgets: out},
	}, nil
}
