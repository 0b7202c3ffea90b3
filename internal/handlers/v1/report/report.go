// Package report serves the derived read models behind the dashboard,
// budgets, and goals screens. Reports are recomputed on every request from the
// stored transactions; nothing here is cached or memoized.
package report

import (
	"github.com/flowi-app/flowi-server/internal/service"
)

// MonthSummary is the API model for one month's totals.
type MonthSummary struct {
	Income     string `json:"income" doc:"Decimal income total"`
	Expenses   string `json:"expenses" doc:"Decimal expense total"`
	Balance    string `json:"balance" doc:"Decimal income minus expenses"`
	SavingRate int64  `json:"savingRate" doc:"Percent of income kept, 0 when there is no income"`
}

// TrendPoint is the API model for one month of the trend series.
type TrendPoint struct {
	Month    string `json:"month" doc:"Short Spanish month name"`
	Income   string `json:"income" doc:"Decimal income total"`
	Expenses string `json:"expenses" doc:"Decimal expense total"`
}

// BreakdownEntry is the API model for one slice of the expense breakdown.
type BreakdownEntry struct {
	Name  string `json:"name" doc:"Category name"`
	Value string `json:"value" doc:"Decimal expense total"`
	Color string `json:"color" doc:"Category display color"`
	Icon  string `json:"icon" doc:"Category icon identifier"`
}

func toSummaryAPI(s service.MonthSummary) MonthSummary {
	return MonthSummary{
		Income:     s.Income.String(),
		Expenses:   s.Expenses.String(),
		Balance:    s.Balance.String(),
		SavingRate: s.SavingRate,
	}
}

func toTrendAPI(points []service.TrendPoint) []TrendPoint {
	out := make([]TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, TrendPoint{
			Month:    p.Month,
			Income:   p.Income.String(),
			Expenses: p.Expenses.String(),
		})
	}
	return out
}

func toBreakdownAPI(entries []service.BreakdownEntry) []BreakdownEntry {
	out := make([]BreakdownEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, BreakdownEntry{
			Name:  e.Name,
			Value: e.Value.String(),
			Color: e.Color,
			Icon:  e.Icon,
		})
	}
	return out
}
