package service

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/storage/budget"
	"github.com/flowi-app/flowi-server/internal/storage/category"
	"github.com/flowi-app/flowi-server/internal/storage/goal"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// Aggregation over transaction lists is recomputed in full on every call.
// The working set is bounded (the store caps dashboard loads at 200 rows), so
// incremental maintenance is not worth its complexity here.

const trendMonths = 6

const breakdownLimit = 6

var hundred = decimal.NewFromInt(100)

var shortMonthNames = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// MonthBounds returns the first and last calendar day of the month containing
// the reference date, at UTC midnight.
func MonthBounds(ref time.Time) (start, end time.Time) {
	start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

func inRange(d, start, end time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

func sumByType(txs []*transaction.Transaction, start, end time.Time) (income, expenses decimal.Decimal) {
	for _, tx := range txs {
		if !inRange(tx.Date, start, end) {
			continue
		}
		// Amounts are summed as stored; rows that slipped past store-side
		// validation must not break the report.
		switch tx.Type {
		case transaction.TypeIncome:
			income = income.Add(tx.Amount)
		case transaction.TypeExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}
	return income, expenses
}

// SummarizeMonth computes income, expenses, balance, and the saving rate for
// the month containing the reference date.
func SummarizeMonth(txs []*transaction.Transaction, ref time.Time) MonthSummary {
	start, end := MonthBounds(ref)
	income, expenses := sumByType(txs, start, end)
	balance := income.Sub(expenses)

	var savingRate int64
	if income.IsPositive() {
		savingRate = balance.Div(income).Mul(hundred).Round(0).IntPart()
	}

	return MonthSummary{
		Income:     income,
		Expenses:   expenses,
		Balance:    balance,
		SavingRate: savingRate,
	}
}

// TrendSeries computes the six-point trailing income/expense series for the
// reference month and the five before it, oldest first. Each point re-filters
// the full list against its own month bounds.
func TrendSeries(txs []*transaction.Transaction, ref time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		start, end := MonthBounds(time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0))
		income, expenses := sumByType(txs, start, end)
		points = append(points, TrendPoint{
			Month:    shortMonthNames[start.Month()-1],
			Income:   income,
			Expenses: expenses,
		})
	}
	return points
}

// CategoryBreakdown computes the current month's expense totals per category,
// for categories of type expense or both, dropping zero totals, descending by
// value, capped at six entries. Expenses whose category does not resolve are
// left out, so the slices need not sum to the raw expense total.
func CategoryBreakdown(txs []*transaction.Transaction, cats []*category.Category, ref time.Time) []BreakdownEntry {
	start, end := MonthBounds(ref)

	entries := make([]BreakdownEntry, 0, len(cats))
	for _, cat := range cats {
		if cat.Type != category.TypeExpense && cat.Type != category.TypeBoth {
			continue
		}
		var value decimal.Decimal
		for _, tx := range txs {
			if tx.Type != transaction.TypeExpense || tx.CategoryID == nil || *tx.CategoryID != cat.ID {
				continue
			}
			if !inRange(tx.Date, start, end) {
				continue
			}
			value = value.Add(tx.Amount)
		}
		if value.IsPositive() {
			entries = append(entries, BreakdownEntry{
				Name:  cat.Name,
				Value: value,
				Color: cat.Color,
				Icon:  cat.Icon,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value.GreaterThan(entries[j].Value)
	})
	if len(entries) > breakdownLimit {
		entries = entries[:breakdownLimit]
	}
	return entries
}

// spendingByCategory sums expense amounts per category id. Uncategorized spend
// is keyed under the nil UUID so it still counts toward the total.
func spendingByCategory(txs []*transaction.Transaction) map[uuid.UUID]decimal.Decimal {
	spending := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != transaction.TypeExpense {
			continue
		}
		key := uuid.Nil
		if tx.CategoryID != nil {
			key = *tx.CategoryID
		}
		spending[key] = spending[key].Add(tx.Amount)
	}
	return spending
}

func clampedPct(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	pct := part.Div(whole).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// ProgressForBudgets pairs each budget with the spend on its category and
// derives the period summary. Callers pass only the expense transactions that
// fall inside the budget period. The summary's TotalSpent counts spend in
// unbudgeted categories too.
func ProgressForBudgets(budgets []*budget.Budget, txs []*transaction.Transaction, cats []*category.Category) ([]BudgetProgress, BudgetSummary) {
	spending := spendingByCategory(txs)

	catByID := make(map[uuid.UUID]*category.Category, len(cats))
	for _, cat := range cats {
		catByID[cat.ID] = cat
	}

	progress := make([]BudgetProgress, 0, len(budgets))
	var totalLimit decimal.Decimal
	for _, b := range budgets {
		spent := spending[b.CategoryID]
		progress = append(progress, BudgetProgress{
			Budget:   b,
			Category: catByID[b.CategoryID],
			Spent:    spent,
			Pct:      clampedPct(spent, b.LimitAmount),
			Over:     spent.GreaterThan(b.LimitAmount),
		})
		totalLimit = totalLimit.Add(b.LimitAmount)
	}

	sort.SliceStable(progress, func(i, j int) bool {
		return progress[i].Pct.GreaterThan(progress[j].Pct)
	})

	var totalSpent decimal.Decimal
	for _, spent := range spending {
		totalSpent = totalSpent.Add(spent)
	}

	return progress, BudgetSummary{
		TotalLimit: totalLimit,
		TotalSpent: totalSpent,
		Pct:        clampedPct(totalSpent, totalLimit),
	}
}

// ProgressForGoals derives per-goal and aggregate savings progress.
func ProgressForGoals(goals []*goal.SavingsGoal) ([]GoalProgress, GoalSummary) {
	progress := make([]GoalProgress, 0, len(goals))
	summary := GoalSummary{}
	for _, g := range goals {
		progress = append(progress, GoalProgress{
			Goal:      g,
			Pct:       clampedPct(g.CurrentAmount, g.TargetAmount),
			Remaining: g.TargetAmount.Sub(g.CurrentAmount),
		})
		summary.TotalSaved = summary.TotalSaved.Add(g.CurrentAmount)
		summary.TotalTarget = summary.TotalTarget.Add(g.TargetAmount)
		if g.Completed {
			summary.CompletedCount++
		}
	}
	if summary.TotalTarget.IsPositive() {
		summary.Pct = summary.TotalSaved.Div(summary.TotalTarget).Mul(hundred)
	}
	return progress, summary
}
