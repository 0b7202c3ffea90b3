package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, must be positive"`
	CategoryID  string `json:"categoryID,omitempty" doc:"Category UUID, omit for uncategorized"`
	Date        string `json:"date" doc:"Transaction date (YYYY-MM-DD), defaults to today"`
	Description string `json:"description" required:"true" minLength:"1" doc:"Short description"`
	Notes       string `json:"notes,omitempty" doc:"Free-form notes"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Body   CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Created transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Records a new income or expense movement for the calling user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (*transaction.TransactionCreate, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be positive", nil)
	}

	var categoryID *uuid.UUID
	if input.Body.CategoryID != "" {
		id, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		categoryID = &id
	}

	date := time.Now().UTC()
	if input.Body.Date != "" {
		date, err = time.Parse("2006-01-02", input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	var notes *string
	if input.Body.Notes != "" {
		notes = &input.Body.Notes
	}

	return &transaction.TransactionCreate{
		UserID:      userID,
		Type:        transaction.Type(input.Body.Type),
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        date,
		Description: input.Body.Description,
		Notes:       notes,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id.String()},
	}, nil
}
