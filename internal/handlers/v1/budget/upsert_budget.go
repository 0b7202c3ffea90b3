package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/storage/budget"
)

// UpsertBudgetBody is the request body for creating a budget. Creating a
// second budget for the same category and period updates the existing limit
// instead of adding a duplicate.
type UpsertBudgetBody struct {
	CategoryID  string `json:"categoryID" required:"true" doc:"Budgeted category UUID"`
	LimitAmount string `json:"limitAmount" required:"true" doc:"Decimal monthly limit, must be positive"`
	Month       int    `json:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month 1-12"`
	Year        int    `json:"year" required:"true" minimum:"2000" doc:"Calendar year"`
}

// UpsertBudgetInput is the Huma input for creating a budget.
type UpsertBudgetInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Body   UpsertBudgetBody
}

// UpsertBudgetResponse is the response body for creating a budget.
type UpsertBudgetResponse struct {
	ID string `json:"id" doc:"Budget UUID, existing row's id when the period was already budgeted"`
}

// UpsertBudgetOutput is the Huma output for creating a budget.
type UpsertBudgetOutput struct {
	Status int
	Body   UpsertBudgetResponse
}

// budgetUpserter is the interface for creating budgets.
type budgetUpserter interface {
	UpsertBudget(ctx context.Context, upsert *budget.BudgetUpsert) (uuid.UUID, error)
}

// UpsertBudgetHandler handles POST /v1/budget.
type UpsertBudgetHandler struct {
	BudgetService budgetUpserter
}

// NewUpsertBudgetHandler creates a new UpsertBudgetHandler.
func NewUpsertBudgetHandler(svc budgetUpserter) *UpsertBudgetHandler {
	return &UpsertBudgetHandler{BudgetService: svc}
}

// Register registers the upsert budget endpoint with the Huma API.
func (h *UpsertBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget",
		Summary:     "Create or update budget",
		Description: "Sets the monthly limit for a category. One budget per category and month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseUpsertBudgetInput(input *UpsertBudgetInput) (*budget.BudgetUpsert, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}

	limit, err := decimal.NewFromString(input.Body.LimitAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid limitAmount", err)
	}
	if !limit.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "limitAmount must be positive", nil)
	}

	return &budget.BudgetUpsert{
		UserID:      userID,
		CategoryID:  categoryID,
		LimitAmount: limit,
		Month:       input.Body.Month,
		Year:        input.Body.Year,
	}, nil
}

func (h *UpsertBudgetHandler) handle(ctx context.Context, input *UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	upsert, err := parseUpsertBudgetInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.BudgetService.UpsertBudget(ctx, upsert)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to save budget", err)
	}

	if logData != nil {
		logData.AddData("budgetID", id.String())
	}

	return &UpsertBudgetOutput{
		Status: http.StatusCreated,
		Body:   UpsertBudgetResponse{ID: id.String()},
	}, nil
}
