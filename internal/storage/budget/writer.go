package budget

import (
	"github.com/stephenafamo/bob"
)

// Writer is a transaction-scoped view of the budgets table.
type Writer struct {
	Table
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Table: Table{
			exec: tx,
		},
	}
}
