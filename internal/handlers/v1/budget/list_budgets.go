package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	Year int `query:"year" minimum:"0" doc:"Budget year, defaults to the current year"`
}

// ListBudgetsData is the data payload for a yearly budget listing.
type ListBudgetsData struct {
	Budgets []Budget `json:"budgets" doc:"Budgets for the year"`
	Summary Summary  `json:"summary" doc:"Yearly aggregate summary"`
}

// ListBudgetsResponseBody is the response envelope for listing budgets.
type ListBudgetsResponseBody struct {
	Success bool            `json:"success" doc:"Always true on success"`
	Data    ListBudgetsData `json:"data"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// budgetLister is the interface for listing budgets.
type budgetLister interface {
	ListBudgets(ctx context.Context, year int) ([]service.Budget, service.BudgetSummary, error)
}

// ListBudgetsHandler handles GET /api/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/api/budgets",
		Summary:     "List budgets",
		Description: "Returns all budgets for a year plus an aggregate summary.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	year := input.Year
	if year == 0 {
		year = time.Now().Year()
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBudgetsMs")
	}
	budgets, summary, err := h.BudgetService.ListBudgets(ctx, year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list budgets", err)
	}

	if logData != nil {
		logData.AddData("budgetCount", len(budgets))
		logData.AddData("year", year)
	}

	data := ListBudgetsData{
		Budgets: make([]Budget, len(budgets)),
		Summary: Summary{
			TotalAnnualBudget: summary.TotalAnnualBudget.String(),
			HighestAllocation: summary.HighestAllocation.String(),
			SavingsTarget:     summary.SavingsTarget.String(),
			RemainingBudget:   summary.RemainingBudget.String(),
		},
	}

	for i, b := range budgets {
		data.Budgets[i] = Budget{
			ID:           b.ID,
			CategoryID:   b.CategoryID,
			Amount:       b.Amount.String(),
			Year:         b.Year,
			IsLocked:     b.IsLocked,
			CategoryName: b.CategoryName,
		}
	}

	return &ListBudgetsOutput{Body: ListBudgetsResponseBody{Success: true, Data: data}}, nil
}
