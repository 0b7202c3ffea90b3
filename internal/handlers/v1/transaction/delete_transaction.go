package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	ID     string `path:"id" doc:"Transaction UUID"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int
}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id, userID uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete transaction",
		Description: "Removes a transaction permanently.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	if err := h.TransactionService.DeleteTransaction(ctx, id, userID); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction", err)
	}

	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}
