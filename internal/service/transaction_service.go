package service

import (
	"context"
	"sort"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/storage"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// TransactionListOptions narrows and orders a transaction listing. Type,
// category, and date bounds push down to the store; search and amount ordering
// are applied on the loaded working set, which is bounded.
type TransactionListOptions struct {
	Filter transaction.TransactionFilter
	Search string
	SortBy string // "date" (default) or "amount"
}

// CreateTransaction creates a new transaction and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	return s.storage.Transactions.Insert(ctx, create)
}

// UpdateTransaction replaces the mutable fields of an existing transaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, update *transaction.TransactionUpdate) error {
	return s.storage.Transactions.Update(ctx, update)
}

// DeleteTransaction removes a transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id, userID uuid.UUID) error {
	return s.storage.Transactions.Delete(ctx, id, userID)
}

// ListTransactions returns transactions matching the options, date descending
// with created_at as tie-break unless amount ordering is requested.
func (s *TransactionService) ListTransactions(ctx context.Context, opts *TransactionListOptions) ([]*transaction.Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &opts.Filter)
	if err != nil {
		return nil, err
	}

	if opts.Search != "" {
		needle := strings.ToLower(opts.Search)
		filtered := rows[:0]
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.Description), needle) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	if opts.SortBy == "amount" {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		})
	}

	return rows, nil
}
