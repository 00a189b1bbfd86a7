package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

func newTestExpenseService(t *testing.T) (*ExpenseService, *mockExpenseTable) {
	t.Helper()
	mockExpenses := new(mockExpenseTable)
	store := &storage.Storage{Expenses: mockExpenses}
	return NewExpenseService(store), mockExpenses
}

func TestListExpenses_Success(t *testing.T) {
	svc, mockExpenses := newTestExpenseService(t)

	expenseDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	rows := []*expense.Expense{
		{
			ID:           7,
			Amount:       decimal.RequireFromString("42.50"),
			ExpenseDate:  expenseDate,
			CategoryID:   10,
			Remarks:      "weekly groceries",
			CategoryName: "Food",
			CreatedAt:    createdAt,
		},
	}

	mockExpenses.On("List", mock.Anything, (*expense.ExpenseFilter)(nil)).Return(rows, nil)

	expenses, err := svc.ListExpenses(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, expenses, 1)
	assert.Equal(t, int64(7), expenses[0].ID)
	assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, expenseDate, expenses[0].ExpenseDate)
	assert.Equal(t, int64(10), expenses[0].CategoryID)
	assert.Equal(t, "weekly groceries", expenses[0].Remarks)
	assert.Equal(t, "Food", expenses[0].CategoryName)
	assert.Equal(t, createdAt, expenses[0].CreatedAt)
}

func TestListExpenses_FilterPassthrough(t *testing.T) {
	svc, mockExpenses := newTestExpenseService(t)

	startDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	minAmount := decimal.RequireFromString("10.00")
	maxAmount := decimal.RequireFromString("100.00")

	mockExpenses.On("List", mock.Anything, mock.MatchedBy(func(f *expense.ExpenseFilter) bool {
		return f != nil &&
			f.Search == "coffee" &&
			f.StartDate != nil && f.StartDate.Equal(startDate) &&
			f.EndDate != nil && f.EndDate.Equal(endDate) &&
			f.CategoryID == 10 &&
			f.MinAmount != nil && f.MinAmount.Equal(minAmount) &&
			f.MaxAmount != nil && f.MaxAmount.Equal(maxAmount)
	})).Return([]*expense.Expense{}, nil)

	_, err := svc.ListExpenses(context.Background(), &ExpenseFilter{
		Search:     "coffee",
		StartDate:  &startDate,
		EndDate:    &endDate,
		CategoryID: 10,
		MinAmount:  &minAmount,
		MaxAmount:  &maxAmount,
	})

	assert.NoError(t, err)
	mockExpenses.AssertExpectations(t)
}

func TestListExpenses_StorageError(t *testing.T) {
	svc, mockExpenses := newTestExpenseService(t)

	mockExpenses.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	expenses, err := svc.ListExpenses(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, expenses)
}

func TestDeleteExpense_Success(t *testing.T) {
	svc, mockExpenses := newTestExpenseService(t)

	mockExpenses.On("Delete", mock.Anything, int64(7)).Return(nil)

	err := svc.DeleteExpense(context.Background(), 7)

	assert.NoError(t, err)
	mockExpenses.AssertExpectations(t)
}

func TestDeleteExpense_StorageError(t *testing.T) {
	svc, mockExpenses := newTestExpenseService(t)

	mockExpenses.On("Delete", mock.Anything, int64(7)).
		Return(errors.New("database unavailable"))

	err := svc.DeleteExpense(context.Background(), 7)

	assert.Error(t, err)
}
