package category

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Ensure Table implements ICategoryTable at compile time.
var _ ICategoryTable = (*Table)(nil)

// Table provides access to the categories table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// List returns all categories ordered by id.
func (t *Table) List(ctx context.Context) ([]*Category, error) {
	query := psql.Select(
		sm.Columns("id", "name", "is_active", "created_at"),
		sm.From("categories"),
		sm.OrderBy("id").Asc(),
	)

	return bob.All(ctx, t.exec, query, scan.StructMapper[*Category]())
}

// Insert creates a new category and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *CategoryCreate) (int64, error) {
	query := psql.Insert(
		im.Into("categories", "name", "is_active"),
		im.Values(psql.Arg(create.Name, create.IsActive)),
		im.Returning("id"),
	)

	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}
