package budget

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

// mockBudgetService mocks the per-handler service interfaces in this package.
type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) ListBudgets(ctx context.Context, year int) ([]service.Budget, service.BudgetSummary, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, service.BudgetSummary{}, args.Error(2)
	}
	return args.Get(0).([]service.Budget), args.Get(1).(service.BudgetSummary), args.Error(2)
}

func (m *mockBudgetService) UpsertBudget(ctx context.Context, categoryID int64, amount decimal.Decimal, year int) (int64, error) {
	args := m.Called(ctx, categoryID, amount, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBudgetService) Status(ctx context.Context, categoryID int64, year int) (*service.StatusReport, error) {
	args := m.Called(ctx, categoryID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatusReport), args.Error(1)
}

func (m *mockBudgetService) SetLock(ctx context.Context, id int64, locked bool) error {
	args := m.Called(ctx, id, locked)
	return args.Error(0)
}

func (m *mockBudgetService) Monitoring(ctx context.Context, year int) ([]service.MonitoringEntry, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.MonitoringEntry), args.Error(1)
}
