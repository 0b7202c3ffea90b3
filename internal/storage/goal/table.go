package goal

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "user_id", "name", "icon", "color", "target_amount", "current_amount", "target_date", "completed", "created_at"}

var _ IGoalTable = (*Table)(nil)

// Table provides access to the savings_goals table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func (t *Table) findByID(ctx context.Context, id, userID uuid.UUID, forUpdate bool) (*SavingsGoal, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("savings_goals"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}
	return bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*SavingsGoal]())
}

// FindByID retrieves a goal by primary key, scoped to its owner.
func (t *Table) FindByID(ctx context.Context, id, userID uuid.UUID) (*SavingsGoal, error) {
	return t.findByID(ctx, id, userID, false)
}

// FindByIDForUpdate retrieves a goal with a row lock so a funding operation can
// read-modify-write without racing a concurrent contribution.
func (t *Table) FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*SavingsGoal, error) {
	return t.findByID(ctx, id, userID, true)
}

// Insert creates a new goal and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error) {
	completed := create.CurrentAmount.GreaterThanOrEqual(create.TargetAmount)
	q := psql.Insert(
		im.Into("savings_goals", "user_id", "name", "icon", "color", "target_amount", "current_amount", "target_date", "completed"),
		im.Values(psql.Arg(create.UserID, create.Name, create.Icon, create.Color, create.TargetAmount, create.CurrentAmount, create.TargetDate, completed)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces the mutable fields of a goal, scoped to its owner.
func (t *Table) Update(ctx context.Context, update *GoalUpdate) error {
	q := psql.Update(
		um.Table("savings_goals"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("icon").ToArg(update.Icon),
		um.SetCol("color").ToArg(update.Color),
		um.SetCol("target_amount").ToArg(update.TargetAmount),
		um.SetCol("current_amount").ToArg(update.CurrentAmount),
		um.SetCol("target_date").ToArg(update.TargetDate),
		um.SetCol("completed").ToArg(update.Completed),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(update.UserID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// SetProgress writes the funded amount and completion flag for a goal.
func (t *Table) SetProgress(ctx context.Context, id, userID uuid.UUID, current decimal.Decimal, completed bool) error {
	q := psql.Update(
		um.Table("savings_goals"),
		um.SetCol("current_amount").ToArg(current),
		um.SetCol("completed").ToArg(completed),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// ListByUser returns every goal belonging to a user, newest first.
func (t *Table) ListByUser(ctx context.Context, userID uuid.UUID) ([]*SavingsGoal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("savings_goals"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*SavingsGoal]())
}

// Delete removes a goal, scoped to its owner.
func (t *Table) Delete(ctx context.Context, id, userID uuid.UUID) error {
	q := psql.Delete(
		dm.From("savings_goals"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// DeleteAllForUser wipes every goal belonging to a user.
func (t *Table) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	q := psql.Delete(
		dm.From("savings_goals"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
