package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/logging"
)

// UpsertBudgetBody is the request body for setting a budget allocation.
type UpsertBudgetBody struct {
	CategoryID int64  `json:"category_id" required:"true" minimum:"1" doc:"Category id"`
	Amount     string `json:"amount" required:"true" doc:"Non-negative decimal allocation"`
	Year       int    `json:"year" required:"true" minimum:"1" doc:"Budget year"`
}

// UpsertBudgetInput is the Huma input for setting a budget.
type UpsertBudgetInput struct {
	Body UpsertBudgetBody
}

// UpsertBudgetResponseBody is the response envelope; data echoes the
// submitted budget with its id.
type UpsertBudgetResponseBody struct {
	Success bool   `json:"success" doc:"Always true on success"`
	Data    Budget `json:"data" doc:"The stored budget"`
	Message string `json:"message" doc:"Human-readable confirmation"`
}

// UpsertBudgetOutput is the Huma output for setting a budget.
type UpsertBudgetOutput struct {
	Body UpsertBudgetResponseBody
}

// budgetUpserter is the interface for creating or updating a budget.
type budgetUpserter interface {
	UpsertBudget(ctx context.Context, categoryID int64, amount decimal.Decimal, year int) (int64, error)
}

// UpsertBudgetHandler handles POST /api/budgets.
type UpsertBudgetHandler struct {
	BudgetService budgetUpserter
}

// NewUpsertBudgetHandler creates a new UpsertBudgetHandler.
func NewUpsertBudgetHandler(svc budgetUpserter) *UpsertBudgetHandler {
	return &UpsertBudgetHandler{BudgetService: svc}
}

// Register registers the upsert budget endpoint with the Huma API.
func (h *UpsertBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-budget",
		Method:      http.MethodPost,
		Path:        "/api/budgets",
		Summary:     "Set budget",
		Description: "Creates the budget for a (category, year) pair or overwrites its amount.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseUpsertBudgetInput(input *UpsertBudgetInput) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.IsNegative() {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "amount must not be negative")
	}
	return amount, nil
}

func (h *UpsertBudgetHandler) handle(ctx context.Context, input *UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseUpsertBudgetInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("upsertBudgetMs")
	}
	id, err := h.BudgetService.UpsertBudget(ctx, input.Body.CategoryID, amount, input.Body.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to set budget", err)
	}

	if logData != nil {
		logData.AddData("budgetID", id)
	}

	return &UpsertBudgetOutput{
		Body: UpsertBudgetResponseBody{
			Success: true,
			Data: Budget{
				ID:         id,
				CategoryID: input.Body.CategoryID,
				Amount:     amount.String(),
				Year:       input.Body.Year,
			},
			Message: "Budget set successfully",
		},
	}, nil
}
