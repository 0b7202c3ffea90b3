package budget

import (
	"github.com/flowi-app/flowi-server/internal/storage/budget"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID          string `json:"id" doc:"Budget UUID"`
	CategoryID  string `json:"categoryID" doc:"Budgeted category UUID"`
	LimitAmount string `json:"limitAmount" doc:"Decimal monthly limit"`
	Month       int    `json:"month" doc:"Calendar month 1-12"`
	Year        int    `json:"year" doc:"Calendar year"`
}

func toAPI(b *budget.Budget) Budget {
	return Budget{
		ID:          b.ID.String(),
		CategoryID:  b.CategoryID.String(),
		LimitAmount: b.LimitAmount.String(),
		Month:       b.Month,
		Year:        b.Year,
	}
}
