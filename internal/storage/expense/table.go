package expense

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

// Ensure Table implements IExpenseTable at compile time.
var _ IExpenseTable = (*Table)(nil)

// Table provides access to the expenses table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// List returns expenses matching the filter, most recent first.
// Predicates are accumulated as where mods in a fixed order so parameters
// always line up with their clauses. Nil filter returns all expenses.
func (t *Table) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			"e.id", "e.amount", "e.expense_date", "e.category_id",
			psql.Raw("COALESCE(e.remarks, '') AS remarks"),
			"e.created_at",
			psql.Raw("c.name AS category_name"),
		),
		sm.From("expenses").As("e"),
		sm.InnerJoin("categories").As("c").On(psql.Raw("e.category_id = c.id")),
	}

	if filter != nil {
		var whereMods []mods.Where[*dialect.SelectQuery]
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			whereMods = append(whereMods, sm.Where(
				psql.Raw("(e.remarks ILIKE ? OR c.name ILIKE ?)", pattern, pattern),
			))
		}
		if filter.StartDate != nil {
			whereMods = append(whereMods, sm.Where(
				psql.Quote("e", "expense_date").GTE(psql.Arg(*filter.StartDate)),
			))
		}
		if filter.EndDate != nil {
			whereMods = append(whereMods, sm.Where(
				psql.Quote("e", "expense_date").LTE(psql.Arg(*filter.EndDate)),
			))
		}
		if filter.CategoryID > 0 {
			whereMods = append(whereMods, sm.Where(
				psql.Quote("e", "category_id").EQ(psql.Arg(filter.CategoryID)),
			))
		}
		if filter.MinAmount != nil {
			whereMods = append(whereMods, sm.Where(
				psql.Quote("e", "amount").GTE(psql.Arg(*filter.MinAmount)),
			))
		}
		if filter.MaxAmount != nil {
			whereMods = append(whereMods, sm.Where(
				psql.Quote("e", "amount").LTE(psql.Arg(*filter.MaxAmount)),
			))
		}
		if len(whereMods) == 1 {
			queryMods = append(queryMods, whereMods[0])
		} else if len(whereMods) > 1 {
			queryMods = append(queryMods, psql.WhereAnd(whereMods...))
		}
	}

	queryMods = append(queryMods,
		sm.OrderBy("e.expense_date").Desc(),
		sm.OrderBy("e.created_at").Desc(),
	)

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Expense]())
}

// Insert creates a new expense and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *ExpenseCreate) (int64, error) {
	query := psql.Insert(
		im.Into("expenses", "amount", "expense_date", "category_id", "remarks"),
		im.Values(psql.Arg(create.Amount, create.ExpenseDate, create.CategoryID, create.Remarks)),
		im.Returning("id"),
	)

	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}

// Delete removes an expense by id. Deleting a missing id is not an error.
func (t *Table) Delete(ctx context.Context, id int64) error {
	query := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// YearlyTotal sums expense amounts for a category within a calendar year.
// Zero rows sum to zero, never null.
func (t *Table) YearlyTotal(ctx context.Context, categoryID int64, year int) (decimal.Decimal, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From("expenses"),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Raw("EXTRACT(YEAR FROM expense_date) = ?", year)),
	)

	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[decimal.Decimal])
}
