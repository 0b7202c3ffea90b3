package profile

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "name", "currency", "monthly_income", "theme", "created_at"}

var _ IProfileTable = (*Table)(nil)

// Table provides access to the profiles table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a profile by user id.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("profiles"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Profile]())
}

// Upsert writes the profile row for a user, creating it on first save.
func (t *Table) Upsert(ctx context.Context, update *ProfileUpdate) error {
	q := psql.Insert(
		im.Into("profiles", "id", "name", "currency", "monthly_income", "theme"),
		im.Values(psql.Arg(update.ID, update.Name, update.Currency, update.MonthlyIncome, update.Theme)),
		im.OnConflict("id").DoUpdate(
			im.SetExcluded("name", "currency", "monthly_income", "theme"),
		),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
