package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "user_id", "name", "icon", "color", "type", "created_at"}

var _ ICategoryTable = (*Table)(nil)

// Table provides access to the categories table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a category by primary key, scoped to its owner.
func (t *Table) FindByID(ctx context.Context, id, userID uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
}

// Insert creates a new category and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("categories", "user_id", "name", "icon", "color", "type"),
		im.Values(psql.Arg(create.UserID, create.Name, create.Icon, create.Color, create.Type)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces the mutable fields of a category, scoped to its owner.
func (t *Table) Update(ctx context.Context, update *CategoryUpdate) error {
	q := psql.Update(
		um.Table("categories"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("icon").ToArg(update.Icon),
		um.SetCol("color").ToArg(update.Color),
		um.SetCol("type").ToArg(update.Type),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(update.UserID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// ListByUser returns every category belonging to a user, ordered by name.
func (t *Table) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Category]())
}

// Delete removes a category, scoped to its owner. Transactions referencing it
// keep their category_id and fall back to uncategorized at read time.
func (t *Table) Delete(ctx context.Context, id, userID uuid.UUID) error {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
