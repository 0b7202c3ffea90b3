package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/service"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	UserID     string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Type       string `query:"type" enum:"income,expense," doc:"Restrict to one transaction type"`
	CategoryID string `query:"categoryID" doc:"Restrict to one category UUID"`
	From       string `query:"from" doc:"Inclusive lower date bound (YYYY-MM-DD)"`
	To         string `query:"to" doc:"Inclusive upper date bound (YYYY-MM-DD)"`
	Search     string `query:"search" doc:"Case-insensitive description substring"`
	SortBy     string `query:"sortBy" enum:"date,amount," doc:"Ordering, default date descending"`
	Limit      int    `query:"limit" minimum:"0" maximum:"500" doc:"Row cap, 0 means no cap"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, opts *service.TransactionListOptions) ([]*transaction.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Lists the calling user's transactions, filtered and ordered.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionListOptions, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	opts := &service.TransactionListOptions{
		Filter: transaction.TransactionFilter{
			UserID: userID,
			Limit:  input.Limit,
		},
		Search: input.Search,
		SortBy: input.SortBy,
	}

	if input.Type != "" {
		t := transaction.Type(input.Type)
		opts.Filter.Type = &t
	}
	if input.CategoryID != "" {
		id, err := uuid.FromString(input.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		opts.Filter.CategoryID = &id
	}
	if input.From != "" {
		from, err := time.Parse("2006-01-02", input.From)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid from date", err)
		}
		opts.Filter.DateFrom = &from
	}
	if input.To != "" {
		to, err := time.Parse("2006-01-02", input.To)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid to date", err)
		}
		opts.Filter.DateTo = &to
	}

	return opts, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	opts, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	rows, err := h.TransactionService.ListTransactions(ctx, opts)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(rows))
	}

	out := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAPI(row))
	}

	return &ListTransactionsOutput{
		Body: ListTransactionsResponseBody{Transactions: out},
	}, nil
}
