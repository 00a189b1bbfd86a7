package budget

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Ensure Table implements IBudgetTable at compile time.
var _ IBudgetTable = (*Table)(nil)

// Table provides access to the budgets table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// ListByYear returns all budgets for a year joined with their category names,
// ordered by category name.
func (t *Table) ListByYear(ctx context.Context, year int) ([]*Budget, error) {
	query := psql.Select(
		sm.Columns(
			"b.id", "b.category_id", "b.amount", "b.year", "b.is_locked",
			psql.Raw("c.name AS category_name"),
		),
		sm.From("budgets").As("b"),
		sm.InnerJoin("categories").As("c").On(psql.Raw("b.category_id = c.id")),
		sm.Where(psql.Quote("b", "year").EQ(psql.Arg(year))),
		sm.OrderBy("c.name").Asc(),
	)

	return bob.All(ctx, t.exec, query, scan.StructMapper[*Budget]())
}

// FindByCategoryYear retrieves the budget for a (category, year) pair.
// A missing budget is not an error: it returns (nil, nil).
func (t *Table) FindByCategoryYear(ctx context.Context, categoryID int64, year int) (*Budget, error) {
	query := psql.Select(
		sm.Columns("id", "category_id", "amount", "year", "is_locked"),
		sm.From("budgets"),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("year").EQ(psql.Arg(year))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Budget]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// upsertQuery builds the insert-or-overwrite statement for one budget. The
// (category_id, year) unique constraint makes the overwrite atomic.
func upsertQuery(upsert *BudgetUpsert) bob.BaseQuery[*dialect.InsertQuery] {
	return psql.Insert(
		im.Into("budgets", "category_id", "amount", "year", "updated_at"),
		im.Values(
			psql.Arg(upsert.CategoryID),
			psql.Arg(upsert.Amount),
			psql.Arg(upsert.Year),
			psql.Raw("NOW()"),
		),
		im.OnConflict("category_id", "year").DoUpdate(
			im.SetExcluded("amount", "updated_at"),
		),
		im.Returning("id"),
	)
}

// Upsert inserts a budget or, when the (category_id, year) pair already
// exists, overwrites its amount. Returns the budget id either way.
func (t *Table) Upsert(ctx context.Context, upsert *BudgetUpsert) (int64, error) {
	return bob.One(ctx, t.exec, upsertQuery(upsert), scan.SingleColumnMapper[int64])
}

// SetLock toggles the circuit-breaker flag on a budget by id.
func (t *Table) SetLock(ctx context.Context, id int64, locked bool) error {
	query := psql.Update(
		um.Table("budgets"),
		um.SetCol("is_locked").ToArg(locked),
		um.SetCol("updated_at").To(psql.Raw("NOW()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MonitoringByYear returns one row per budget in the year: the budget joined
// with its category and the summed expenses sharing that category and year.
// The left join keeps zero-expense budgets in the result with a zero total.
func (t *Table) MonitoringByYear(ctx context.Context, year int) ([]*MonitoringRow, error) {
	query := psql.Select(
		sm.Columns(
			psql.Raw("b.id AS budget_id"),
			psql.Raw("c.name AS category_name"),
			psql.Raw("b.amount AS budget_amount"),
			"b.is_locked",
			psql.Raw("COALESCE(SUM(e.amount), 0) AS total_spent"),
		),
		sm.From("budgets").As("b"),
		sm.InnerJoin("categories").As("c").On(psql.Raw("b.category_id = c.id")),
		sm.LeftJoin("expenses").As("e").On(
			psql.Raw("b.category_id = e.category_id AND EXTRACT(YEAR FROM e.expense_date) = b.year"),
		),
		sm.Where(psql.Quote("b", "year").EQ(psql.Arg(year))),
		sm.GroupBy("b.id"),
		sm.GroupBy("c.name"),
		sm.GroupBy("b.amount"),
		sm.GroupBy("b.is_locked"),
		sm.OrderBy("c.name").Asc(),
	)

	return bob.All(ctx, t.exec, query, scan.StructMapper[*MonitoringRow]())
}

// TotalAnnual sums all budget allocations for a year.
func (t *Table) TotalAnnual(ctx context.Context, year int) (decimal.Decimal, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From("budgets"),
		sm.Where(psql.Quote("year").EQ(psql.Arg(year))),
	)

	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[decimal.Decimal])
}
