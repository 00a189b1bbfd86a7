package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/budget"
	"github.com/carson-networks/expense-server/internal/storage/category"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Storage aggregates table access for the whole schema. The table fields are
// interface-typed so tests can substitute mocks.
type Storage struct {
	DB         *sql.DB
	bobDB      bob.DB
	Categories category.ICategoryTable
	Expenses   expense.IExpenseTable
	Budgets    budget.IBudgetTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage.sql.Open")
	}

	return &Storage{
		DB:         db,
		bobDB:      bob.NewDB(db),
		Categories: category.NewTable(db),
		Expenses:   expense.NewTable(db),
		Budgets:    budget.NewTable(db),
	}
}

// Write opens a transaction and returns a Writer scoped to it. The caller
// must finish with Commit or Rollback on every path.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
