package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

func newMonitoringTestAPI(t *testing.T, svc monitoringProvider) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewMonitoringHandler(svc).Register(api)
	return api
}

func TestHTTP_Monitoring_Success(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("Monitoring", mock.Anything, 2025).Return([]service.MonitoringEntry{
		{
			BudgetID:     1,
			CategoryName: "Food",
			BudgetAmount: decimal.RequireFromString("500.00"),
			IsLocked:     false,
			Spent:        decimal.RequireFromString("125.00"),
			Percentage:   decimal.RequireFromString("25"),
		},
		{
			BudgetID:     2,
			CategoryName: "Rent",
			BudgetAmount: decimal.RequireFromString("1200.00"),
			IsLocked:     true,
			Spent:        decimal.Zero,
			Percentage:   decimal.Zero,
		},
	}, nil)

	resp := newMonitoringTestAPI(t, mockSvc).Get("/api/monitoring?year=2025")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonitoringResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 2)
	assert.Equal(t, int64(1), body.Data[0].BudgetID)
	assert.Equal(t, "Food", body.Data[0].CategoryName)
	assert.Equal(t, "500", body.Data[0].BudgetAmount)
	assert.Equal(t, "125", body.Data[0].Spent)
	assert.Equal(t, 25.0, body.Data[0].Percentage)
	assert.True(t, body.Data[1].IsLocked)
	assert.Zero(t, body.Data[1].Percentage)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Monitoring_YearDefaultsToCurrent(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("Monitoring", mock.Anything, time.Now().Year()).
		Return([]service.MonitoringEntry{}, nil)

	resp := newMonitoringTestAPI(t, mockSvc).Get("/api/monitoring")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Monitoring_ServiceError(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("Monitoring", mock.Anything, 2025).
		Return(nil, errors.New("database unavailable"))

	resp := newMonitoringTestAPI(t, mockSvc).Get("/api/monitoring?year=2025")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
