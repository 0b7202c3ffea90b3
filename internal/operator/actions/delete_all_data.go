package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/storage"
)

// DeleteAllData wipes a user's transactions, budgets, and goals in one
// transaction. Categories and the profile survive the wipe.
type DeleteAllData struct {
	UserID uuid.UUID

	IAction
}

func (d *DeleteAllData) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Transactions.DeleteAllForUser(ctx, d.UserID); err != nil {
		return err
	}
	if err := writer.Budgets.DeleteAllForUser(ctx, d.UserID); err != nil {
		return err
	}
	return writer.Goals.DeleteAllForUser(ctx, d.UserID)
}
