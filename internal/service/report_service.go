package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-server/internal/storage"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// dashboardFetchLimit caps the working set loaded for the dashboard, matching
// the store-side cap on recent transactions.
const dashboardFetchLimit = 200

const recentCount = 8

// ReportService derives the read-only view models for the dashboard, budget,
// and goal screens. It holds no state between calls; every report reloads its
// working set and recomputes from scratch.
type ReportService struct {
	storage *storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

// Dashboard loads the recent working set and derives the month summary, trend
// series, category breakdown, and quick stats for the reference date.
func (s *ReportService) Dashboard(ctx context.Context, userID uuid.UUID, ref time.Time) (*Dashboard, error) {
	txs, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		UserID: userID,
		Limit:  dashboardFetchLimit,
	})
	if err != nil {
		return nil, err
	}
	cats, err := s.storage.Categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := SummarizeMonth(txs, ref)

	start, end := MonthBounds(ref)
	monthCount := 0
	biggest := decimal.Zero
	for _, tx := range txs {
		if !inRange(tx.Date, start, end) {
			continue
		}
		monthCount++
		if tx.Type == transaction.TypeExpense && tx.Amount.GreaterThan(biggest) {
			biggest = tx.Amount
		}
	}

	dayOfMonth := ref.Day()
	if dayOfMonth < 1 {
		dayOfMonth = 1
	}
	dailyAverage := summary.Expenses.Div(decimal.NewFromInt(int64(dayOfMonth)))

	recent := txs
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}

	return &Dashboard{
		Summary:        summary,
		Trend:          TrendSeries(txs, ref),
		Breakdown:      CategoryBreakdown(txs, cats, ref),
		Recent:         recent,
		MonthCount:     monthCount,
		BiggestExpense: biggest,
		DailyAverage:   dailyAverage,
	}, nil
}

// BudgetOverview loads a period's budgets and expense transactions and derives
// per-budget progress plus the period summary.
func (s *ReportService) BudgetOverview(ctx context.Context, userID uuid.UUID, month, year int) (*BudgetOverview, error) {
	budgets, err := s.storage.Budgets.ListForPeriod(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	start, end := MonthBounds(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
	expenseType := transaction.TypeExpense
	txs, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		UserID:   userID,
		Type:     &expenseType,
		DateFrom: &start,
		DateTo:   &end,
	})
	if err != nil {
		return nil, err
	}

	cats, err := s.storage.Categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress, summary := ProgressForBudgets(budgets, txs, cats)
	return &BudgetOverview{Budgets: progress, Summary: summary}, nil
}

// GoalOverview loads a user's goals and derives per-goal and aggregate
// progress.
func (s *ReportService) GoalOverview(ctx context.Context, userID uuid.UUID) (*GoalOverview, error) {
	goals, err := s.storage.Goals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, summary := ProgressForGoals(goals)
	return &GoalOverview{Goals: progress, Summary: summary}, nil
}
