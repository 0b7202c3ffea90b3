package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/flowi-app/flowi-server/internal/config"
	"github.com/flowi-app/flowi-server/internal/storage/budget"
	"github.com/flowi-app/flowi-server/internal/storage/category"
	"github.com/flowi-app/flowi-server/internal/storage/goal"
	"github.com/flowi-app/flowi-server/internal/storage/profile"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

type Storage struct {
	DB           bob.DB
	Profiles     profile.IProfileTable
	Categories   category.ICategoryTable
	Transactions transaction.ITransactionTable
	Budgets      budget.IBudgetTable
	Goals        goal.IGoalTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:           bobDB,
		Profiles:     profile.NewTable(bobDB),
		Categories:   category.NewTable(bobDB),
		Transactions: transaction.NewTable(bobDB),
		Budgets:      budget.NewTable(bobDB),
		Goals:        goal.NewTable(bobDB),
	}
}

// Write opens a transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
