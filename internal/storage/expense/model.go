package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense row joined with its category name.
type Expense struct {
	ID           int64           `db:"id"`
	Amount       decimal.Decimal `db:"amount"`
	ExpenseDate  time.Time       `db:"expense_date"`
	CategoryID   int64           `db:"category_id"`
	Remarks      string          `db:"remarks"`
	CategoryName string          `db:"category_name"`
	CreatedAt    time.Time       `db:"created_at"`
}

// ExpenseCreate is the input for creating a new expense.
type ExpenseCreate struct {
	Amount      decimal.Decimal
	ExpenseDate time.Time
	CategoryID  int64
	Remarks     string
}

// ExpenseFilter specifies optional filters for listing expenses.
// Nil/zero fields are absent filters; all supplied filters are ANDed.
type ExpenseFilter struct {
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID int64
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// IExpenseTable defines the interface for expense storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IExpenseTable interface {
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (int64, error)
	Delete(ctx context.Context, id int64) error
	YearlyTotal(ctx context.Context, categoryID int64, year int) (decimal.Decimal, error)
}
