package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/budget"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Writer bundles transaction-scoped table views for multi-step writes. The
// table fields are interface-typed so action tests can substitute mocks.
type Writer struct {
	tx      bob.Tx
	Expense expense.IExpenseTable
	Budget  budget.IBudgetTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:      tx,
		Expense: expense.NewWriter(tx),
		Budget:  budget.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
