package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/flowi-app/flowi-server/internal/storage/budget"
	"github.com/flowi-app/flowi-server/internal/storage/goal"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// Writer bundles the tables an action may touch inside one transaction.
type Writer struct {
	tx           bob.Tx
	Transactions transaction.ITransactionTable
	Budgets      budget.IBudgetTable
	Goals        goal.IGoalTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transaction.NewTable(tx),
		Budgets:      budget.NewTable(tx),
		Goals:        goal.NewTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
