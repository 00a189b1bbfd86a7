package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/storage/budget"
	"github.com/carson-networks/expense-server/internal/storage/category"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// mockBudgetTable is a hand-written mock for budget.IBudgetTable.
type mockBudgetTable struct {
	mock.Mock
}

var _ budget.IBudgetTable = (*mockBudgetTable)(nil)

func (m *mockBudgetTable) ListByYear(ctx context.Context, year int) ([]*budget.Budget, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.Budget), args.Error(1)
}

func (m *mockBudgetTable) FindByCategoryYear(ctx context.Context, categoryID int64, year int) (*budget.Budget, error) {
	args := m.Called(ctx, categoryID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Budget), args.Error(1)
}

func (m *mockBudgetTable) Upsert(ctx context.Context, upsert *budget.BudgetUpsert) (int64, error) {
	args := m.Called(ctx, upsert)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBudgetTable) SetLock(ctx context.Context, id int64, locked bool) error {
	args := m.Called(ctx, id, locked)
	return args.Error(0)
}

func (m *mockBudgetTable) MonitoringByYear(ctx context.Context, year int) ([]*budget.MonitoringRow, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.MonitoringRow), args.Error(1)
}

func (m *mockBudgetTable) TotalAnnual(ctx context.Context, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// mockExpenseTable is a hand-written mock for expense.IExpenseTable.
type mockExpenseTable struct {
	mock.Mock
}

var _ expense.IExpenseTable = (*mockExpenseTable)(nil)

func (m *mockExpenseTable) List(ctx context.Context, filter *expense.ExpenseFilter) ([]*expense.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*expense.Expense), args.Error(1)
}

func (m *mockExpenseTable) Insert(ctx context.Context, create *expense.ExpenseCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockExpenseTable) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockExpenseTable) YearlyTotal(ctx context.Context, categoryID int64, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, categoryID, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// mockCategoryTable is a hand-written mock for category.ICategoryTable.
type mockCategoryTable struct {
	mock.Mock
}

var _ category.ICategoryTable = (*mockCategoryTable)(nil)

func (m *mockCategoryTable) List(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *category.CategoryCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}
