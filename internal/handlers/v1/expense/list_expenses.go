package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListExpensesInput is the Huma input for listing expenses. Every filter is
// optional; empty strings are treated as absent, not zero.
type ListExpensesInput struct {
	Search     string `query:"search" doc:"Case-insensitive substring match on remarks or category name"`
	StartDate  string `query:"start_date" doc:"Inclusive lower bound, YYYY-MM-DD"`
	EndDate    string `query:"end_date" doc:"Inclusive upper bound, YYYY-MM-DD"`
	CategoryID int64  `query:"category_id" minimum:"0" doc:"Category id, 0 means unfiltered"`
	MinAmount  string `query:"min_amount" doc:"Inclusive decimal lower bound"`
	MaxAmount  string `query:"max_amount" doc:"Inclusive decimal upper bound"`
}

// ListExpensesResponseBody is the response envelope for listing expenses.
type ListExpensesResponseBody struct {
	Success bool      `json:"success" doc:"Always true on success"`
	Data    []Expense `json:"data" doc:"Matching expenses, most recent first"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	ListExpenses(ctx context.Context, filter *service.ExpenseFilter) ([]service.Expense, error)
}

// ListExpensesHandler handles GET /api/expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/api/expenses",
		Summary:     "List expenses",
		Description: "Returns expenses matching the conjunction of all supplied filters.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

// parseListExpensesInput validates the raw query values and assembles the
// service filter. Supplied-but-empty values stay absent.
func parseListExpensesInput(input *ListExpensesInput) (*service.ExpenseFilter, error) {
	filter := &service.ExpenseFilter{
		Search:     input.Search,
		CategoryID: input.CategoryID,
	}

	if input.StartDate != "" {
		startDate, err := time.Parse(dateLayout, input.StartDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid start_date", err)
		}
		filter.StartDate = &startDate
	}
	if input.EndDate != "" {
		endDate, err := time.Parse(dateLayout, input.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid end_date", err)
		}
		filter.EndDate = &endDate
	}
	if input.MinAmount != "" {
		minAmount, err := decimal.NewFromString(input.MinAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid min_amount", err)
		}
		filter.MinAmount = &minAmount
	}
	if input.MaxAmount != "" {
		maxAmount, err := decimal.NewFromString(input.MaxAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid max_amount", err)
		}
		filter.MaxAmount = &maxAmount
	}

	return filter, nil
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := parseListExpensesInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listExpensesMs")
	}
	expenses, err := h.ExpenseService.ListExpenses(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list expenses", err)
	}

	if logData != nil {
		logData.AddData("expenseCount", len(expenses))
	}

	data := make([]Expense, len(expenses))
	for i, e := range expenses {
		data[i] = Expense{
			ID:           e.ID,
			Amount:       e.Amount.String(),
			ExpenseDate:  e.ExpenseDate.Format(dateLayout),
			CategoryID:   e.CategoryID,
			Remarks:      e.Remarks,
			CategoryName: e.CategoryName,
			CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListExpensesOutput{Body: ListExpensesResponseBody{Success: true, Data: data}}, nil
}
