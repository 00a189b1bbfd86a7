package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/handlers/v1/budget"
	"github.com/carson-networks/expense-server/internal/handlers/v1/category"
	"github.com/carson-networks/expense-server/internal/handlers/v1/expense"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator operator.Processor
	Storage  *storage.Storage
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("expense-server", "1.0.0"))

	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewCreateCategoryHandler(r.Service.Category).Register(humaAPI)

	expense.NewListExpensesHandler(r.Service.Expense).Register(humaAPI)
	expense.NewCreateExpenseHandler(r.Operator).Register(humaAPI)
	expense.NewDeleteExpenseHandler(r.Service.Expense).Register(humaAPI)

	budget.NewListBudgetsHandler(r.Service.Budget).Register(humaAPI)
	budget.NewUpsertBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewBudgetStatusHandler(r.Service.Budget).Register(humaAPI)
	budget.NewLockBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewMonitoringHandler(r.Service.Budget).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           requestLogger(r.Logger, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
