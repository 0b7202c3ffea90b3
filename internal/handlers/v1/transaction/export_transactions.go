package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/export"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/storage/category"
)

// ExportTransactionsInput is the Huma input for exporting transactions. The
// filters match the list endpoint so the download mirrors the visible list.
type ExportTransactionsInput struct {
	UserID     string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Type       string `query:"type" enum:"income,expense," doc:"Restrict to one transaction type"`
	CategoryID string `query:"categoryID" doc:"Restrict to one category UUID"`
	From       string `query:"from" doc:"Inclusive lower date bound (YYYY-MM-DD)"`
	To         string `query:"to" doc:"Inclusive upper date bound (YYYY-MM-DD)"`
	Search     string `query:"search" doc:"Case-insensitive description substring"`
}

// ExportTransactionsOutput is the Huma output for the CSV download.
type ExportTransactionsOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// categoryLister is the interface for loading the user's categories.
type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*category.Category, error)
}

// ExportTransactionsHandler handles GET /v1/transactions/export.
type ExportTransactionsHandler struct {
	TransactionService transactionLister
	CategoryService    categoryLister
}

// NewExportTransactionsHandler creates a new ExportTransactionsHandler.
func NewExportTransactionsHandler(txSvc transactionLister, catSvc categoryLister) *ExportTransactionsHandler {
	return &ExportTransactionsHandler{TransactionService: txSvc, CategoryService: catSvc}
}

// Register registers the export endpoint with the Huma API.
func (h *ExportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/export",
		Summary:     "Export transactions as CSV",
		Description: "Downloads the filtered transaction list as a UTF-8 CSV file.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ExportTransactionsHandler) handle(ctx context.Context, input *ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	opts, err := parseListTransactionsInput(&ListTransactionsInput{
		UserID:     input.UserID,
		Type:       input.Type,
		CategoryID: input.CategoryID,
		From:       input.From,
		To:         input.To,
		Search:     input.Search,
	})
	if err != nil {
		return nil, err
	}

	rows, err := h.TransactionService.ListTransactions(ctx, opts)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load transactions", err)
	}

	cats, err := h.CategoryService.ListCategories(ctx, opts.Filter.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load categories", err)
	}

	if logData != nil {
		logData.AddData("exportRowCount", len(rows))
	}

	return &ExportTransactionsOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: `attachment; filename="` + export.Filename(time.Now()) + `"`,
		Body:               export.TransactionsCSV(rows, cats),
	}, nil
}
