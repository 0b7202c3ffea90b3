package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "user_id", "type", "amount", "category_id", "date", "description", "notes", "created_at"}

var _ ITransactionTable = (*Table)(nil)

// Table provides access to the transactions table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a transaction by primary key, scoped to its owner.
func (t *Table) FindByID(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}

// Insert creates a new transaction and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("transactions", "user_id", "type", "amount", "category_id", "date", "description", "notes"),
		im.Values(psql.Arg(create.UserID, create.Type, create.Amount, create.CategoryID, create.Date, create.Description, create.Notes)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces the mutable fields of a transaction, scoped to its owner.
func (t *Table) Update(ctx context.Context, update *TransactionUpdate) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("date").ToArg(update.Date),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("notes").ToArg(update.Notes),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(update.UserID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns transactions matching the filter, most recent first with
// created_at as the tie-break for same-date rows.
func (t *Table) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.Type != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.CategoryID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.DateFrom != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(*filter.DateFrom))))
	}
	if filter.DateTo != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(psql.Arg(*filter.DateTo))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// Delete removes a transaction, scoped to its owner.
func (t *Table) Delete(ctx context.Context, id, userID uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// DeleteAllForUser wipes every transaction belonging to a user.
func (t *Table) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
