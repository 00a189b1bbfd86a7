package actions

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// ErrBudgetLocked rejects an expense whose category budget is locked for the
// expense's year. Nothing is persisted when this is returned.
var ErrBudgetLocked = errors.New("budget for this category is locked")

// CreateExpense inserts an expense after the circuit-breaker check: the
// budget for (category, year of expense date) must not be locked. The check
// always precedes the insert; it is not serialized against concurrent lock
// toggles.
type CreateExpense struct {
	Amount      decimal.Decimal
	ExpenseDate time.Time
	CategoryID  int64
	Remarks     string

	// ID of the created expense, set on success.
	ID int64

	IAction
}

func (c *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	year := c.ExpenseDate.Year()

	budgetRow, err := writer.Budget.FindByCategoryYear(ctx, c.CategoryID, year)
	if err != nil {
		return err
	}
	if budgetRow != nil && budgetRow.IsLocked {
		return ErrBudgetLocked
	}

	id, err := writer.Expense.Insert(ctx, &expense.ExpenseCreate{
		Amount:      c.Amount,
		ExpenseDate: c.ExpenseDate,
		CategoryID:  c.CategoryID,
		Remarks:     c.Remarks,
	})
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
