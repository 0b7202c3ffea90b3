package transaction

import (
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Type        string `json:"type" doc:"Transaction type: income or expense"`
	Amount      string `json:"amount" doc:"Decimal amount, always positive"`
	CategoryID  string `json:"categoryID,omitempty" doc:"Category UUID, absent when uncategorized"`
	Date        string `json:"date" doc:"Transaction date (YYYY-MM-DD)"`
	Description string `json:"description" doc:"Short description"`
	Notes       string `json:"notes,omitempty" doc:"Free-form notes"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation timestamp"`
}

func toAPI(tx *transaction.Transaction) Transaction {
	out := Transaction{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Date:        tx.Date.Format("2006-01-02"),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if tx.CategoryID != nil {
		out.CategoryID = tx.CategoryID.String()
	}
	if tx.Notes != nil {
		out.Notes = *tx.Notes
	}
	return out
}
