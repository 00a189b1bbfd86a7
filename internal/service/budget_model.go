package service

import (
	"github.com/shopspring/decimal"
)

// Budget represents a budget in the service layer.
type Budget struct {
	ID           int64
	CategoryID   int64
	Amount       decimal.Decimal
	Year         int
	IsLocked     bool
	CategoryName string
}

// BudgetSummary is the aggregate attached to a yearly budget listing.
// Only TotalAnnualBudget is populated today; the remaining fields are
// reserved for the dashboard and stay zero.
type BudgetSummary struct {
	TotalAnnualBudget decimal.Decimal
	HighestAllocation decimal.Decimal
	SavingsTarget     decimal.Decimal
	RemainingBudget   decimal.Decimal
}

// StatusReport is the spend-vs-allocation status for one (category, year).
// Remaining may be negative when spend exceeds the allocation; that is an
// over-budget signal, not an error.
type StatusReport struct {
	Allocated decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Percent   decimal.Decimal
	IsLocked  bool
}

// MonitoringEntry is one per-category rollup row for a year.
type MonitoringEntry struct {
	BudgetID     int64
	CategoryName string
	BudgetAmount decimal.Decimal
	IsLocked     bool
	Spent        decimal.Decimal
	Percentage   decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// percentOf computes spent/allocated*100, defined as 0 for a zero (or
// negative) allocation so a zero budget never divides by zero.
func percentOf(spent, allocated decimal.Decimal) decimal.Decimal {
	if !allocated.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(allocated).Mul(oneHundred)
}
