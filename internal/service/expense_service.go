package service

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// ExpenseService handles expense reads and deletion. Expense creation goes
// through the operator so the circuit-breaker check and insert run together.
type ExpenseService struct {
	storage *storage.Storage
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store}
}

// ListExpenses returns expenses matching the filter, most recent first.
func (s *ExpenseService) ListExpenses(ctx context.Context, filter *ExpenseFilter) ([]Expense, error) {
	var storageFilter *expense.ExpenseFilter
	if filter != nil {
		storageFilter = &expense.ExpenseFilter{
			Search:     filter.Search,
			StartDate:  filter.StartDate,
			EndDate:    filter.EndDate,
			CategoryID: filter.CategoryID,
			MinAmount:  filter.MinAmount,
			MaxAmount:  filter.MaxAmount,
		}
	}

	rows, err := s.storage.Expenses.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	converted := make([]Expense, len(rows))
	for i, row := range rows {
		converted[i] = Expense{
			ID:           row.ID,
			Amount:       row.Amount,
			ExpenseDate:  row.ExpenseDate,
			CategoryID:   row.CategoryID,
			Remarks:      row.Remarks,
			CategoryName: row.CategoryName,
			CreatedAt:    row.CreatedAt,
		}
	}

	return converted, nil
}

// DeleteExpense removes an expense by id. There is no lock gating on delete.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	return s.storage.Expenses.Delete(ctx, id)
}
