package budget

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "user_id", "category_id", "limit_amount", "month", "year", "created_at"}

var _ IBudgetTable = (*Table)(nil)

// Table provides access to the budgets table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// Upsert inserts a budget, or updates limit_amount when a row already exists
// for the (user_id, category_id, month, year) key.
func (t *Table) Upsert(ctx context.Context, upsert *BudgetUpsert) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("budgets", "user_id", "category_id", "limit_amount", "month", "year"),
		im.Values(psql.Arg(upsert.UserID, upsert.CategoryID, upsert.LimitAmount, upsert.Month, upsert.Year)),
		im.OnConflict("user_id", "category_id", "month", "year").DoUpdate(
			im.SetExcluded("limit_amount"),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateLimit changes the limit on an existing budget. Category and period are
// immutable after creation.
func (t *Table) UpdateLimit(ctx context.Context, id, userID uuid.UUID, limit decimal.Decimal) error {
	q := psql.Update(
		um.Table("budgets"),
		um.SetCol("limit_amount").ToArg(limit),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// ListForPeriod returns a user's budgets for one (month, year).
func (t *Table) ListForPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("year").EQ(psql.Arg(year))),
		sm.OrderBy("created_at").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Budget]())
}

// Delete removes a budget, scoped to its owner.
func (t *Table) Delete(ctx context.Context, id, userID uuid.UUID) error {
	q := psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// DeleteAllForUser wipes every budget belonging to a user.
func (t *Table) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	q := psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
