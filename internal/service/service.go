package service

import (
	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Budget   *BudgetService
	Expense  *ExpenseService
	Category *CategoryService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Budget:   NewBudgetService(store),
		Expense:  NewExpenseService(store),
		Category: NewCategoryService(store),
	}
}
