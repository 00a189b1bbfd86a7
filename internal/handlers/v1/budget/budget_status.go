package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// BudgetStatusInput is the Huma input for the status endpoint. Both
// parameters are required positive integers.
type BudgetStatusInput struct {
	CategoryID int64 `query:"category_id" required:"true" minimum:"1" doc:"Category id"`
	Year       int   `query:"year" required:"true" minimum:"1" doc:"Budget year"`
}

// BudgetStatusData is the spend-vs-allocation report.
type BudgetStatusData struct {
	Allocated string  `json:"allocated" doc:"Budgeted amount, 0 when no budget is configured"`
	Spent     string  `json:"spent" doc:"Sum of expenses for the category in the year"`
	Remaining string  `json:"remaining" doc:"Allocated minus spent, may be negative"`
	Percent   float64 `json:"percent" doc:"Spent as a percentage of allocated, 0 for a zero allocation"`
	IsLocked  bool    `json:"is_locked" doc:"Circuit-breaker flag"`
}

// BudgetStatusResponseBody is the response envelope for the status endpoint.
type BudgetStatusResponseBody struct {
	Success bool             `json:"success" doc:"Always true on success"`
	Data    BudgetStatusData `json:"data"`
}

// BudgetStatusOutput is the Huma output for the status endpoint.
type BudgetStatusOutput struct {
	Body BudgetStatusResponseBody
}

// budgetStatusReporter is the interface for computing budget status.
type budgetStatusReporter interface {
	Status(ctx context.Context, categoryID int64, year int) (*service.StatusReport, error)
}

// BudgetStatusHandler handles GET /api/budgets/status.
type BudgetStatusHandler struct {
	BudgetService budgetStatusReporter
}

// NewBudgetStatusHandler creates a new BudgetStatusHandler.
func NewBudgetStatusHandler(svc budgetStatusReporter) *BudgetStatusHandler {
	return &BudgetStatusHandler{BudgetService: svc}
}

// Register registers the budget status endpoint with the Huma API.
func (h *BudgetStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-status",
		Method:      http.MethodGet,
		Path:        "/api/budgets/status",
		Summary:     "Budget status",
		Description: "Returns spent, remaining, and percentage for one category and year.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *BudgetStatusHandler) handle(ctx context.Context, input *BudgetStatusInput) (*BudgetStatusOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetStatusMs")
	}
	report, err := h.BudgetService.Status(ctx, input.CategoryID, input.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute budget status", err)
	}

	return &BudgetStatusOutput{
		Body: BudgetStatusResponseBody{
			Success: true,
			Data: BudgetStatusData{
				Allocated: report.Allocated.String(),
				Spent:     report.Spent.String(),
				Remaining: report.Remaining.String(),
				Percent:   report.Percent.Round(2).InexactFloat64(),
				IsLocked:  report.IsLocked,
			},
		},
	}, nil
}
