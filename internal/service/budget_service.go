package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/budget"
)

// BudgetService handles budget allocations, spend status, and monitoring.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// ListBudgets returns all budgets for a year plus the summary aggregate.
func (s *BudgetService) ListBudgets(ctx context.Context, year int) ([]Budget, BudgetSummary, error) {
	rows, err := s.storage.Budgets.ListByYear(ctx, year)
	if err != nil {
		return nil, BudgetSummary{}, err
	}

	total, err := s.storage.Budgets.TotalAnnual(ctx, year)
	if err != nil {
		return nil, BudgetSummary{}, err
	}

	converted := make([]Budget, len(rows))
	for i, row := range rows {
		converted[i] = Budget{
			ID:           row.ID,
			CategoryID:   row.CategoryID,
			Amount:       row.Amount,
			Year:         row.Year,
			IsLocked:     row.IsLocked,
			CategoryName: row.CategoryName,
		}
	}

	summary := BudgetSummary{
		TotalAnnualBudget: total,
		HighestAllocation: decimal.Zero,
		SavingsTarget:     decimal.Zero,
		RemainingBudget:   decimal.Zero,
	}

	return converted, summary, nil
}

// UpsertBudget creates the budget for (category, year) or overwrites its
// amount when the pair already exists. Returns the budget id.
func (s *BudgetService) UpsertBudget(ctx context.Context, categoryID int64, amount decimal.Decimal, year int) (int64, error) {
	return s.storage.Budgets.Upsert(ctx, &budget.BudgetUpsert{
		CategoryID: categoryID,
		Amount:     amount,
		Year:       year,
	})
}

// Status computes the spend-vs-allocation report for one (category, year).
// A missing budget is not an error: allocated, remaining, and percent default
// to zero and the lock is reported open, while spent still reflects the real
// expense total for that category and year.
func (s *BudgetService) Status(ctx context.Context, categoryID int64, year int) (*StatusReport, error) {
	budgetRow, err := s.storage.Budgets.FindByCategoryYear(ctx, categoryID, year)
	if err != nil {
		return nil, err
	}

	spent, err := s.storage.Expenses.YearlyTotal(ctx, categoryID, year)
	if err != nil {
		return nil, err
	}

	if budgetRow == nil {
		return &StatusReport{
			Allocated: decimal.Zero,
			Spent:     spent,
			Remaining: decimal.Zero,
			Percent:   decimal.Zero,
			IsLocked:  false,
		}, nil
	}

	return &StatusReport{
		Allocated: budgetRow.Amount,
		Spent:     spent,
		Remaining: budgetRow.Amount.Sub(spent),
		Percent:   percentOf(spent, budgetRow.Amount),
		IsLocked:  budgetRow.IsLocked,
	}, nil
}

// SetLock toggles the circuit-breaker flag on a budget by id.
// Returns budget.ErrNotFound when no budget has that id.
func (s *BudgetService) SetLock(ctx context.Context, id int64, locked bool) error {
	return s.storage.Budgets.SetLock(ctx, id, locked)
}

// Monitoring returns the per-category rollup for a year: one entry per
// budget, with the yearly spend total and percentage. Categories without a
// budget row for the year do not appear.
func (s *BudgetService) Monitoring(ctx context.Context, year int) ([]MonitoringEntry, error) {
	rows, err := s.storage.Budgets.MonitoringByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	entries := make([]MonitoringEntry, len(rows))
	for i, row := range rows {
		entries[i] = MonitoringEntry{
			BudgetID:     row.BudgetID,
			CategoryName: row.CategoryName,
			BudgetAmount: row.BudgetAmount,
			IsLocked:     row.IsLocked,
			Spent:        row.Spent,
			Percentage:   percentOf(row.Spent, row.BudgetAmount),
		}
	}

	return entries, nil
}
