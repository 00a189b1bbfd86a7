package expense

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// CreateExpenseBody is the request body for recording an expense.
type CreateExpenseBody struct {
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	ExpenseDate string `json:"expense_date" required:"true" doc:"Calendar date, YYYY-MM-DD"`
	CategoryID  int64  `json:"category_id" required:"true" minimum:"1" doc:"Category id"`
	Remarks     string `json:"remarks,omitempty" doc:"Optional free text"`
}

// CreateExpenseInput is the Huma input for recording an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

// CreateExpenseResponseBody is the response envelope for recording an expense.
type CreateExpenseResponseBody struct {
	Success bool   `json:"success" doc:"Always true on success"`
	Message string `json:"message" doc:"Human-readable confirmation"`
}

// CreateExpenseOutput is the Huma output for recording an expense.
type CreateExpenseOutput struct {
	Status int
	Body   CreateExpenseResponseBody
}

// actionProcessor runs a write action through the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateExpenseHandler handles POST /api/expenses.
type CreateExpenseHandler struct {
	Operator actionProcessor
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(op actionProcessor) *CreateExpenseHandler {
	return &CreateExpenseHandler{Operator: op}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-expense",
		Method:      http.MethodPost,
		Path:        "/api/expenses",
		Summary:     "Record expense",
		Description: "Records an expense unless the budget for its category and year is locked.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

// parseCreateExpenseInput validates amount and date before any lock check
// or write is attempted.
func parseCreateExpenseInput(input *CreateExpenseInput) (decimal.Decimal, time.Time, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "amount must be positive")
	}

	expenseDate, err := time.Parse(dateLayout, input.Body.ExpenseDate)
	if err != nil {
		return decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid expense_date", err)
	}

	return amount, expenseDate, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, expenseDate, err := parseCreateExpenseInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateExpense{
		Amount:      amount,
		ExpenseDate: expenseDate,
		CategoryID:  input.Body.CategoryID,
		Remarks:     input.Body.Remarks,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createExpenseMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, actions.ErrBudgetLocked) {
		return nil, huma.NewError(http.StatusForbidden, "Budget for this category is LOCKED. Cannot add expense.")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to record expense", err)
	}

	if logData != nil {
		logData.AddData("expenseID", action.ID)
	}

	return &CreateExpenseOutput{
		Status: http.StatusCreated,
		Body:   CreateExpenseResponseBody{Success: true, Message: "Expense recorded"},
	}, nil
}
