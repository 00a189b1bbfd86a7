package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

func newStatusTestAPI(t *testing.T, svc budgetStatusReporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewBudgetStatusHandler(svc).Register(api)
	return api
}

func TestHTTP_BudgetStatus_Success(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("Status", mock.Anything, int64(10), 2025).Return(&service.StatusReport{
		Allocated: decimal.RequireFromString("1000.00"),
		Spent:     decimal.RequireFromString("333.33"),
		Remaining: decimal.RequireFromString("666.67"),
		Percent:   decimal.RequireFromString("33.333"),
		IsLocked:  true,
	}, nil)

	resp := newStatusTestAPI(t, mockSvc).Get("/api/budgets/status?category_id=10&year=2025")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BudgetStatusResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "1000", body.Data.Allocated)
	assert.Equal(t, "333.33", body.Data.Spent)
	assert.Equal(t, "666.67", body.Data.Remaining)
	assert.Equal(t, 33.33, body.Data.Percent, "rounded to two decimal places")
	assert.True(t, body.Data.IsLocked)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BudgetStatus_NoBudgetConfigured(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("Status", mock.Anything, int64(10), 2025).Return(&service.StatusReport{
		Allocated: decimal.Zero,
		Spent:     decimal.RequireFromString("99.99"),
		Remaining: decimal.Zero,
		Percent:   decimal.Zero,
		IsLocked:  false,
	}, nil)

	resp := newStatusTestAPI(t, mockSvc).Get("/api/budgets/status?category_id=10&year=2025")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BudgetStatusResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0", body.Data.Allocated)
	assert.Equal(t, "99.99", body.Data.Spent)
	assert.Equal(t, "0", body.Data.Remaining)
	assert.Zero(t, body.Data.Percent)
	assert.False(t, body.Data.IsLocked)
}

func TestHTTP_BudgetStatus_MissingParams(t *testing.T) {
	mockSvc := new(mockBudgetService)

	// Both query params are required; Huma rejects the request.
	resp := newStatusTestAPI(t, mockSvc).Get("/api/budgets/status")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Status")
}

func TestHTTP_BudgetStatus_NonPositiveCategoryID(t *testing.T) {
	mockSvc := new(mockBudgetService)

	resp := newStatusTestAPI(t, mockSvc).Get("/api/budgets/status?category_id=0&year=2025")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Status")
}

func TestHTTP_BudgetStatus_ServiceError(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("Status", mock.Anything, int64(10), 2025).
		Return(nil, errors.New("database unavailable"))

	resp := newStatusTestAPI(t, mockSvc).Get("/api/budgets/status?category_id=10&year=2025")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
