package budget

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	storagebudget "github.com/carson-networks/expense-server/internal/storage/budget"
)

// LockBudgetBody is the request body for toggling the circuit breaker.
type LockBudgetBody struct {
	IsLocked bool `json:"is_locked" doc:"True locks the budget, false unlocks it"`
}

// LockBudgetInput is the Huma input for toggling a budget lock.
type LockBudgetInput struct {
	ID   int64 `path:"id" doc:"Budget id"`
	Body LockBudgetBody
}

// LockBudgetResponseBody is the response envelope for the lock toggle.
type LockBudgetResponseBody struct {
	Success bool   `json:"success" doc:"Always true on success"`
	Message string `json:"message" doc:"Human-readable confirmation"`
}

// LockBudgetOutput is the Huma output for toggling a budget lock.
type LockBudgetOutput struct {
	Body LockBudgetResponseBody
}

// budgetLocker is the interface for toggling a budget lock.
type budgetLocker interface {
	SetLock(ctx context.Context, id int64, locked bool) error
}

// LockBudgetHandler handles POST /api/budgets/{id}/lock.
type LockBudgetHandler struct {
	BudgetService budgetLocker
}

// NewLockBudgetHandler creates a new LockBudgetHandler.
func NewLockBudgetHandler(svc budgetLocker) *LockBudgetHandler {
	return &LockBudgetHandler{BudgetService: svc}
}

// Register registers the lock toggle endpoint with the Huma API.
func (h *LockBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "lock-budget",
		Method:      http.MethodPost,
		Path:        "/api/budgets/{id}/lock",
		Summary:     "Toggle budget lock",
		Description: "Locks or unlocks a budget by id. A locked budget rejects new expenses.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *LockBudgetHandler) handle(ctx context.Context, input *LockBudgetInput) (*LockBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("lockBudgetMs")
	}
	err := h.BudgetService.SetLock(ctx, input.ID, input.Body.IsLocked)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, storagebudget.ErrNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "budget not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update lock", err)
	}

	if logData != nil {
		logData.AddData("budgetID", input.ID)
		logData.AddData("isLocked", input.Body.IsLocked)
	}

	return &LockBudgetOutput{
		Body: LockBudgetResponseBody{Success: true, Message: "Lock updated"},
	}, nil
}
