package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID           int64
	Amount       decimal.Decimal
	ExpenseDate  time.Time
	CategoryID   int64
	Remarks      string
	CategoryName string
	CreatedAt    time.Time
}

// ExpenseFilter carries the optional list filters. Nil/zero fields are
// absent; supplied filters are conjunctive.
type ExpenseFilter struct {
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID int64
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}
