package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/dataset"
	"app/models"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/health", HandleHealth)
	app.Get("/summary", HandleGetSummary)
	app.Get("/by-product", HandleSalesByProduct)
	app.Get("/by-region", HandleSalesByRegion)
	app.Get("/by/:field", HandleSalesByField)
	app.Get("/monthly", HandleMonthlyTotals)
	app.Get("/insights", HandleGetInsights)
	app.Get("/query", HandleQuery)
	app.Get("/forecast", HandleForecast)
	return app
}

func seedSample() {
	dataset.Init([]models.SalesRecord{
		{Month: "Jan", Product: "A", Region: "North", Sales: 100},
		{Month: "Feb", Product: "A", Region: "North", Sales: 120},
		{Month: "Mar", Product: "B", Region: "South", Sales: 80},
		{Month: "Mar", Product: "A", Region: "North", Sales: 90},
	})
}

func getJSON(t *testing.T, app *fiber.App, path string, out interface{}) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
	return resp.StatusCode
}

func TestHandleHealth(t *testing.T) {
	seedSample()
	app := newTestApp()

	var body map[string]interface{}
	status := getJSON(t, app, "/health", &body)
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, 4.0, body["rows"])
}

func TestHandleGetSummary(t *testing.T) {
	seedSample()
	app := newTestApp()

	var body models.SummaryStats
	status := getJSON(t, app, "/summary", &body)
	assert.Equal(t, 200, status)
	assert.Equal(t, 390.0, body.TotalSales)
	assert.Equal(t, 97.5, body.AverageSale)
	assert.Equal(t, 2, body.UniqueProducts)
}

func TestHandleSalesByProduct(t *testing.T) {
	seedSample()
	app := newTestApp()

	var rows []models.AggregateRow
	status := getJSON(t, app, "/by-product", &rows)
	assert.Equal(t, 200, status)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Key)
	assert.Equal(t, 310.0, rows[0].Total)
}

func TestHandleSalesByFieldUnknown(t *testing.T) {
	seedSample()
	app := newTestApp()

	var body map[string]interface{}
	status := getJSON(t, app, "/by/Quantity", &body)
	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "Quantity")
}

func TestHandleMonthlyTotalsOrder(t *testing.T) {
	seedSample()
	app := newTestApp()

	var rows []models.AggregateRow
	status := getJSON(t, app, "/monthly", &rows)
	assert.Equal(t, 200, status)
	require.Len(t, rows, 3)
	assert.Equal(t, "Jan", rows[0].Key)
	assert.Equal(t, "Mar", rows[2].Key)
}

func TestHandleGetInsights(t *testing.T) {
	seedSample()
	app := newTestApp()

	var body models.InsightReport
	status := getJSON(t, app, "/insights", &body)
	assert.Equal(t, 200, status)
	require.NotEmpty(t, body.Insights)
	assert.Equal(t, "Top product: A with 310 sales (79.5% of total).", body.Insights[0])
	assert.Len(t, body.Structured.MonthlyTotals, 3)
}

func TestHandleQueryTopProduct(t *testing.T) {
	seedSample()
	app := newTestApp()

	var body models.QueryAnswer
	status := getJSON(t, app, "/query?q=top+product", &body)
	assert.Equal(t, 200, status)
	assert.Equal(t, "Top product is A with 310 sales.", body.Answer)
}

func TestHandleQueryFallback(t *testing.T) {
	seedSample()
	app := newTestApp()

	var body models.QueryAnswer
	status := getJSON(t, app, "/query?q=tell+me+a+joke", &body)
	assert.Equal(t, 200, status)
	assert.Contains(t, body.Answer, "couldn't understand")
}

func TestHandleForecast(t *testing.T) {
	dataset.Init([]models.SalesRecord{
		{Month: "Jan", Product: "A", Region: "North", Sales: 100},
		{Month: "Feb", Product: "A", Region: "North", Sales: 200},
		{Month: "Mar", Product: "A", Region: "North", Sales: 300},
	})
	app := newTestApp()

	var body struct {
		MonthlyTotals []models.AggregateRow `json:"monthly_totals"`
		Forecast      models.ForecastResult `json:"forecast"`
	}
	status := getJSON(t, app, "/forecast?months_ahead=1", &body)
	assert.Equal(t, 200, status)
	assert.InDelta(t, 400.0, body.Forecast.PredictedSales, 1e-9)
	assert.InDelta(t, 100.0, body.Forecast.Model.Slope, 1e-9)
	assert.Len(t, body.MonthlyTotals, 3)
}

func TestHandleForecastInsufficientData(t *testing.T) {
	dataset.Init([]models.SalesRecord{{Month: "Jan", Product: "A", Region: "North", Sales: 100}})
	app := newTestApp()

	var body map[string]interface{}
	status := getJSON(t, app, "/forecast", &body)
	assert.Equal(t, 422, status)
	assert.Contains(t, body["error"], "at least 2")
}

func TestHandleForecastInvalidHorizon(t *testing.T) {
	seedSample()
	app := newTestApp()

	var body map[string]interface{}
	status := getJSON(t, app, "/forecast?months_ahead=0", &body)
	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "months_ahead")
}
