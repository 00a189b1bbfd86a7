package budget

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by writes targeting a budget id that does not exist.
var ErrNotFound = errors.New("budget not found")

// Budget represents a budget row, optionally joined with its category name.
type Budget struct {
	ID           int64           `db:"id"`
	CategoryID   int64           `db:"category_id"`
	Amount       decimal.Decimal `db:"amount"`
	Year         int             `db:"year"`
	IsLocked     bool            `db:"is_locked"`
	CategoryName string          `db:"category_name"`
}

// BudgetUpsert is the input for creating or updating a budget allocation.
// The (CategoryID, Year) pair is the unique business key.
type BudgetUpsert struct {
	CategoryID int64
	Amount     decimal.Decimal
	Year       int
}

// MonitoringRow is one budget joined with its yearly spend total.
type MonitoringRow struct {
	BudgetID     int64           `db:"budget_id"`
	CategoryName string          `db:"category_name"`
	BudgetAmount decimal.Decimal `db:"budget_amount"`
	IsLocked     bool            `db:"is_locked"`
	Spent        decimal.Decimal `db:"total_spent"`
}

// IBudgetTable defines the interface for budget storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IBudgetTable interface {
	ListByYear(ctx context.Context, year int) ([]*Budget, error)
	FindByCategoryYear(ctx context.Context, categoryID int64, year int) (*Budget, error)
	Upsert(ctx context.Context, upsert *BudgetUpsert) (int64, error)
	SetLock(ctx context.Context, id int64, locked bool) error
	MonitoringByYear(ctx context.Context, year int) ([]*MonitoringRow, error)
	TotalAnnual(ctx context.Context, year int) (decimal.Decimal, error)
}
