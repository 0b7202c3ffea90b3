package service

import (
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/storage/budget"
	"github.com/flowi-app/flowi-server/internal/storage/category"
	"github.com/flowi-app/flowi-server/internal/storage/goal"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// MonthSummary aggregates one calendar month of transactions.
type MonthSummary struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Balance    decimal.Decimal
	SavingRate int64 // percent, 0 when there is no income
}

// TrendPoint is one month of the trailing income/expense series.
type TrendPoint struct {
	Month    string // short Spanish month name
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// BreakdownEntry is one slice of the current-month expense breakdown.
type BreakdownEntry struct {
	Name  string
	Value decimal.Decimal
	Color string
	Icon  string
}

// BudgetProgress pairs a budget with the month's spend on its category.
type BudgetProgress struct {
	Budget   *budget.Budget
	Category *category.Category // nil when the category no longer resolves
	Spent    decimal.Decimal
	Pct      decimal.Decimal // clamped to [0, 100] for display
	Over     bool            // from the unclamped ratio
}

// BudgetSummary aggregates a month's budgets against all spend in scope.
// TotalSpent covers every category with spend, budgeted or not, so it does not
// have to reconcile with the sum of per-budget spends.
type BudgetSummary struct {
	TotalLimit decimal.Decimal
	TotalSpent decimal.Decimal
	Pct        decimal.Decimal // clamped to [0, 100], 0 when TotalLimit is 0
}

// GoalProgress pairs a goal with its derived progress numbers.
type GoalProgress struct {
	Goal      *goal.SavingsGoal
	Pct       decimal.Decimal // clamped to [0, 100]
	Remaining decimal.Decimal // target - current, may be negative
}

// GoalSummary aggregates all goals of a user.
type GoalSummary struct {
	TotalSaved     decimal.Decimal
	TotalTarget    decimal.Decimal
	Pct            decimal.Decimal // 0 when TotalTarget is 0
	CompletedCount int
}

// Dashboard is the composed view model behind the main screen.
type Dashboard struct {
	Summary        MonthSummary
	Trend          []TrendPoint
	Breakdown      []BreakdownEntry
	Recent         []*transaction.Transaction
	MonthCount     int
	BiggestExpense decimal.Decimal
	DailyAverage   decimal.Decimal
}

// BudgetOverview is the composed view model behind the budgets screen.
type BudgetOverview struct {
	Budgets []BudgetProgress
	Summary BudgetSummary
}

// GoalOverview is the composed view model behind the goals screen.
type GoalOverview struct {
	Goals   []GoalProgress
	Summary GoalSummary
}
