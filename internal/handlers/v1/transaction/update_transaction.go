package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// UpdateTransactionBody is the request body for updating a transaction. All
// mutable fields are replaced; omitted optional fields are cleared.
type UpdateTransactionBody struct {
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, must be positive"`
	CategoryID  string `json:"categoryID,omitempty" doc:"Category UUID, omit for uncategorized"`
	Date        string `json:"date" required:"true" doc:"Transaction date (YYYY-MM-DD)"`
	Description string `json:"description" required:"true" minLength:"1" doc:"Short description"`
	Notes       string `json:"notes,omitempty" doc:"Free-form notes"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	ID     string `path:"id" doc:"Transaction UUID"`
	Body   UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Status int
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, update *transaction.TransactionUpdate) error
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Replaces the fields of an existing transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (*transaction.TransactionUpdate, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be positive", nil)
	}

	date, err := time.Parse("2006-01-02", input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	var categoryID *uuid.UUID
	if input.Body.CategoryID != "" {
		cid, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		categoryID = &cid
	}

	var notes *string
	if input.Body.Notes != "" {
		notes = &input.Body.Notes
	}

	return &transaction.TransactionUpdate{
		ID:          id,
		UserID:      userID,
		Type:        transaction.Type(input.Body.Type),
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        date,
		Description: input.Body.Description,
		Notes:       notes,
	}, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	update, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.UpdateTransaction(ctx, update); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}

	return &UpdateTransactionOutput{Status: http.StatusNoContent}, nil
}
