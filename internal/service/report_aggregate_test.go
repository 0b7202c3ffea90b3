package service

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/flowi-app/flowi-server/internal/storage/budget"
	"github.com/flowi-app/flowi-server/internal/storage/category"
	"github.com/flowi-app/flowi-server/internal/storage/goal"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

func makeTx(txType transaction.Type, amount string, date time.Time, categoryID *uuid.UUID) *transaction.Transaction {
	return &transaction.Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     uuid.Must(uuid.NewV4()),
		Type:       txType,
		Amount:     decimal.RequireFromString(amount),
		CategoryID: categoryID,
		Date:       date,
	}
}

func makeCategory(name string, catType category.Type) *category.Category {
	return &category.Category{
		ID:   uuid.Must(uuid.NewV4()),
		Name: name,
		Type: catType,
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2024, 2, 14, 17, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)
}

func TestSummarizeMonth(t *testing.T) {
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		makeTx(transaction.TypeIncome, "500", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil),
		makeTx(transaction.TypeExpense, "100", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), nil),
		// Outside the month, must not count.
		makeTx(transaction.TypeIncome, "999", time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), nil),
	}

	summary := SummarizeMonth(txs, ref)
	assert.True(t, summary.Income.Equal(decimal.RequireFromString("500")))
	assert.True(t, summary.Expenses.Equal(decimal.RequireFromString("100")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("400")))
	assert.Equal(t, int64(80), summary.SavingRate)
}

func TestSummarizeMonth_NoIncome(t *testing.T) {
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		makeTx(transaction.TypeExpense, "100", ref, nil),
	}

	summary := SummarizeMonth(txs, ref)
	assert.Equal(t, int64(0), summary.SavingRate)
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("-100")))
}

func TestSummarizeMonth_IncludesMonthEdges(t *testing.T) {
	ref := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		makeTx(transaction.TypeIncome, "10", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), nil),
		makeTx(transaction.TypeIncome, "20", time.Date(2024, 4, 30, 23, 59, 0, 0, time.UTC), nil),
	}

	summary := SummarizeMonth(txs, ref)
	assert.True(t, summary.Income.Equal(decimal.RequireFromString("30")))
}

func TestTrendSeries(t *testing.T) {
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		makeTx(transaction.TypeIncome, "100", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), nil),
		makeTx(transaction.TypeExpense, "40", time.Date(2023, 10, 20, 0, 0, 0, 0, time.UTC), nil),
	}

	points := TrendSeries(txs, ref)
	assert.Len(t, points, 6)

	// Oldest first: oct, nov, dic, ene, feb, mar.
	assert.Equal(t, "oct", points[0].Month)
	assert.Equal(t, "mar", points[5].Month)

	assert.True(t, points[0].Expenses.Equal(decimal.RequireFromString("40")))
	assert.True(t, points[5].Income.Equal(decimal.RequireFromString("100")))

	// Empty months still appear with zero totals.
	assert.True(t, points[2].Income.IsZero())
	assert.True(t, points[2].Expenses.IsZero())
}

func TestTrendSeries_EmptyInput(t *testing.T) {
	points := TrendSeries(nil, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	assert.Len(t, points, 6)
	for _, p := range points {
		assert.True(t, p.Income.IsZero())
		assert.True(t, p.Expenses.IsZero())
	}
}

func TestCategoryBreakdown(t *testing.T) {
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	food := makeCategory("Comida", category.TypeExpense)
	transport := makeCategory("Transporte", category.TypeBoth)
	salary := makeCategory("Salario", category.TypeIncome)
	unused := makeCategory("Ocio", category.TypeExpense)
	cats := []*category.Category{food, transport, salary, unused}

	txs := []*transaction.Transaction{
		makeTx(transaction.TypeExpense, "80", ref, &food.ID),
		makeTx(transaction.TypeExpense, "120", ref, &transport.ID),
		// Income in an income category must not show up.
		makeTx(transaction.TypeIncome, "500", ref, &salary.ID),
		// Expense with no resolvable category is excluded.
		makeTx(transaction.TypeExpense, "33", ref, nil),
	}

	entries := CategoryBreakdown(txs, cats, ref)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Transporte", entries[0].Name)
	assert.Equal(t, "Comida", entries[1].Name)
	assert.True(t, entries[0].Value.Equal(decimal.RequireFromString("120")))
}

func TestCategoryBreakdown_CapsAtSix(t *testing.T) {
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	cats := make([]*category.Category, 0, 8)
	txs := make([]*transaction.Transaction, 0, 8)
	for i := 0; i < 8; i++ {
		cat := makeCategory("Cat", category.TypeExpense)
		cats = append(cats, cat)
		txs = append(txs, makeTx(transaction.TypeExpense, decimal.NewFromInt(int64(10+i)).String(), ref, &cat.ID))
	}

	entries := CategoryBreakdown(txs, cats, ref)
	assert.Len(t, entries, 6)
	// Largest first, smallest two dropped.
	assert.True(t, entries[0].Value.Equal(decimal.RequireFromString("17")))
	assert.True(t, entries[5].Value.Equal(decimal.RequireFromString("12")))
}

func TestProgressForBudgets_OverAndClamp(t *testing.T) {
	catID := uuid.Must(uuid.NewV4())
	budgets := []*budget.Budget{
		{ID: uuid.Must(uuid.NewV4()), CategoryID: catID, LimitAmount: decimal.RequireFromString("200")},
	}
	txs := []*transaction.Transaction{
		makeTx(transaction.TypeExpense, "250", time.Now(), &catID),
	}

	progress, summary := ProgressForBudgets(budgets, txs, nil)
	assert.Len(t, progress, 1)
	// Display percent clamps at 100 while the over flag comes from the raw comparison.
	assert.True(t, progress[0].Pct.Equal(decimal.RequireFromString("100")))
	assert.True(t, progress[0].Over)
	assert.True(t, summary.TotalSpent.Equal(decimal.RequireFromString("250")))
}

func TestProgressForBudgets_SummaryCountsUnbudgetedSpend(t *testing.T) {
	budgetedCat := uuid.Must(uuid.NewV4())
	otherCat := uuid.Must(uuid.NewV4())
	budgets := []*budget.Budget{
		{ID: uuid.Must(uuid.NewV4()), CategoryID: budgetedCat, LimitAmount: decimal.RequireFromString("300")},
	}
	txs := []*transaction.Transaction{
		makeTx(transaction.TypeExpense, "100", time.Now(), &budgetedCat),
		makeTx(transaction.TypeExpense, "50", time.Now(), &otherCat),
		makeTx(transaction.TypeExpense, "25", time.Now(), nil),
	}

	progress, summary := ProgressForBudgets(budgets, txs, nil)
	assert.True(t, progress[0].Spent.Equal(decimal.RequireFromString("100")))
	// 100 budgeted + 50 unbudgeted + 25 uncategorized.
	assert.True(t, summary.TotalSpent.Equal(decimal.RequireFromString("175")))
	assert.True(t, summary.TotalLimit.Equal(decimal.RequireFromString("300")))
}

func TestProgressForBudgets_SortedByConsumption(t *testing.T) {
	lowCat := uuid.Must(uuid.NewV4())
	highCat := uuid.Must(uuid.NewV4())
	budgets := []*budget.Budget{
		{ID: uuid.Must(uuid.NewV4()), CategoryID: lowCat, LimitAmount: decimal.RequireFromString("100")},
		{ID: uuid.Must(uuid.NewV4()), CategoryID: highCat, LimitAmount: decimal.RequireFromString("100")},
	}
	txs := []*transaction.Transaction{
		makeTx(transaction.TypeExpense, "10", time.Now(), &lowCat),
		makeTx(transaction.TypeExpense, "90", time.Now(), &highCat),
	}

	progress, _ := ProgressForBudgets(budgets, txs, nil)
	assert.Equal(t, highCat, progress[0].Budget.CategoryID)
	assert.Equal(t, lowCat, progress[1].Budget.CategoryID)
}

func TestProgressForBudgets_ZeroLimit(t *testing.T) {
	catID := uuid.Must(uuid.NewV4())
	budgets := []*budget.Budget{
		{ID: uuid.Must(uuid.NewV4()), CategoryID: catID, LimitAmount: decimal.Zero},
	}
	txs := []*transaction.Transaction{
		makeTx(transaction.TypeExpense, "10", time.Now(), &catID),
	}

	progress, _ := ProgressForBudgets(budgets, txs, nil)
	// The percentage guard against a zero limit does not mute the over flag.
	assert.True(t, progress[0].Pct.IsZero())
	assert.True(t, progress[0].Over)
}

func TestProgressForGoals(t *testing.T) {
	goals := []*goal.SavingsGoal{
		{
			ID:            uuid.Must(uuid.NewV4()),
			TargetAmount:  decimal.RequireFromString("1000"),
			CurrentAmount: decimal.RequireFromString("250"),
		},
		{
			ID:            uuid.Must(uuid.NewV4()),
			TargetAmount:  decimal.RequireFromString("500"),
			CurrentAmount: decimal.RequireFromString("500"),
			Completed:     true,
		},
	}

	progress, summary := ProgressForGoals(goals)
	assert.Len(t, progress, 2)
	assert.True(t, progress[0].Pct.Equal(decimal.RequireFromString("25")))
	assert.True(t, progress[0].Remaining.Equal(decimal.RequireFromString("750")))
	assert.True(t, progress[1].Pct.Equal(decimal.RequireFromString("100")))

	assert.True(t, summary.TotalSaved.Equal(decimal.RequireFromString("750")))
	assert.True(t, summary.TotalTarget.Equal(decimal.RequireFromString("1500")))
	assert.True(t, summary.Pct.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, 1, summary.CompletedCount)
}

func TestClampedPct(t *testing.T) {
	assert.True(t, clampedPct(decimal.RequireFromString("50"), decimal.RequireFromString("200")).Equal(decimal.RequireFromString("25")))
	assert.True(t, clampedPct(decimal.RequireFromString("300"), decimal.RequireFromString("200")).Equal(decimal.RequireFromString("100")))
	assert.True(t, clampedPct(decimal.RequireFromString("10"), decimal.Zero).IsZero())
}
