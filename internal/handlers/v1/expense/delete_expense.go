package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	ID int64 `path:"id" doc:"Expense id"`
}

// DeleteExpenseResponseBody is the response envelope for deleting an expense.
type DeleteExpenseResponseBody struct {
	Success bool   `json:"success" doc:"Always true on success"`
	Message string `json:"message" doc:"Human-readable confirmation"`
}

// DeleteExpenseOutput is the Huma output for deleting an expense.
type DeleteExpenseOutput struct {
	Body DeleteExpenseResponseBody
}

// expenseDeleter is the interface for deleting expenses.
type expenseDeleter interface {
	DeleteExpense(ctx context.Context, id int64) error
}

// DeleteExpenseHandler handles DELETE /api/expenses/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/api/expenses/{id}",
		Summary:     "Delete expense",
		Description: "Deletes an expense by id. Locked budgets do not gate deletion.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteExpenseMs")
	}
	err := h.ExpenseService.DeleteExpense(ctx, input.ID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete expense", err)
	}

	if logData != nil {
		logData.AddData("expenseID", input.ID)
	}

	return &DeleteExpenseOutput{
		Body: DeleteExpenseResponseBody{Success: true, Message: "Expense deleted"},
	}, nil
}
