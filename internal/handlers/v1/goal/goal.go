package goal

import (
	"github.com/flowi-app/flowi-server/internal/storage/goal"
)

// SavingsGoal is the API response model for a savings goal.
type SavingsGoal struct {
	ID            string `json:"id" doc:"Goal UUID"`
	Name          string `json:"name" doc:"Goal name"`
	Icon          string `json:"icon" doc:"Icon identifier"`
	Color         string `json:"color" doc:"Display color (hex)"`
	TargetAmount  string `json:"targetAmount" doc:"Decimal target amount"`
	CurrentAmount string `json:"currentAmount" doc:"Decimal saved amount, never above the target"`
	TargetDate    string `json:"targetDate,omitempty" doc:"Optional target date (YYYY-MM-DD)"`
	Completed     bool   `json:"completed" doc:"True once the saved amount reaches the target"`
}

func toAPI(g *goal.SavingsGoal) SavingsGoal {
	out := SavingsGoal{
		ID:            g.ID.String(),
		Name:          g.Name,
		Icon:          g.Icon,
		Color:         g.Color,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Completed:     g.Completed,
	}
	if g.TargetDate != nil {
		out.TargetDate = g.TargetDate.Format("2006-01-02")
	}
	return out
}
