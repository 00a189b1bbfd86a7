package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// MonitoringInput is the Huma input for the monitoring rollup.
type MonitoringInput struct {
	Year int `query:"year" minimum:"0" doc:"Year to roll up, defaults to the current year"`
}

// MonitoringRow is one budget joined with its yearly spend total.
type MonitoringRow struct {
	BudgetID     int64   `json:"budget_id" doc:"Budget id"`
	CategoryName string  `json:"category_name" doc:"Category name"`
	BudgetAmount string  `json:"budget_amount" doc:"Decimal allocation"`
	IsLocked     bool    `json:"is_locked" doc:"Circuit-breaker flag"`
	Spent        string  `json:"spent" doc:"Summed expenses for the category and year"`
	Percentage   float64 `json:"percentage" doc:"Spent as a percentage of the allocation"`
}

// MonitoringResponseBody is the response envelope for the monitoring rollup.
type MonitoringResponseBody struct {
	Success bool            `json:"success" doc:"Always true on success"`
	Data    []MonitoringRow `json:"data" doc:"One row per budget in the year"`
}

// MonitoringOutput is the Huma output for the monitoring rollup.
type MonitoringOutput struct {
	Body MonitoringResponseBody
}

// monitoringProvider is the interface for the yearly monitoring rollup.
type monitoringProvider interface {
	Monitoring(ctx context.Context, year int) ([]service.MonitoringEntry, error)
}

// MonitoringHandler handles GET /api/monitoring.
type MonitoringHandler struct {
	BudgetService monitoringProvider
}

// NewMonitoringHandler creates a new MonitoringHandler.
func NewMonitoringHandler(svc monitoringProvider) *MonitoringHandler {
	return &MonitoringHandler{BudgetService: svc}
}

// Register registers the monitoring endpoint with the Huma API.
func (h *MonitoringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monitoring",
		Method:      http.MethodGet,
		Path:        "/api/monitoring",
		Summary:     "Monitoring rollup",
		Description: "Returns every budget for a year with its spend total, percentage, and lock state.",
		Tags:        []string{"Monitoring"},
	}, h.handle)
}

func (h *MonitoringHandler) handle(ctx context.Context, input *MonitoringInput) (*MonitoringOutput, error) {
	logData := logging.GetLogData(ctx)

	year := input.Year
	if year == 0 {
		year = time.Now().Year()
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monitoringMs")
	}
	entries, err := h.BudgetService.Monitoring(ctx, year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load monitoring data", err)
	}

	if logData != nil {
		logData.AddData("rowCount", len(entries))
		logData.AddData("year", year)
	}

	rows := make([]MonitoringRow, len(entries))
	for i, entry := range entries {
		rows[i] = MonitoringRow{
			BudgetID:     entry.BudgetID,
			CategoryName: entry.CategoryName,
			BudgetAmount: entry.BudgetAmount.String(),
			IsLocked:     entry.IsLocked,
			Spent:        entry.Spent.String(),
			Percentage:   entry.Percentage.Round(2).InexactFloat64(),
		}
	}

	return &MonitoringOutput{Body: MonitoringResponseBody{Success: true, Data: rows}}, nil
}
