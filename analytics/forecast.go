package analytics

import (
	"errors"

	"app/models"
)

// ErrInsufficientData is returned when fewer than two distinct months exist,
// which leaves the regression underdetermined.
var ErrInsufficientData = errors.New("not enough months to forecast (need at least 2)")

// Forecast fits a least-squares line over (month index, monthly total) pairs
// and projects it monthsAhead past the last observed month. The predicted
// index is n + monthsAhead - 1, so monthsAhead=1 predicts the month directly
// after the data.
func Forecast(records []models.SalesRecord, monthsAhead int) (models.ForecastResult, error) {
	monthly := MonthlyTotals(records)
	n := len(monthly)
	if n < 2 {
		return models.ForecastResult{}, ErrInsufficientData
	}

	var sumX, sumY float64
	for i, row := range monthly {
		sumX += float64(i)
		sumY += row.Total
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX float64
	for i, row := range monthly {
		dx := float64(i) - meanX
		cov += dx * (row.Total - meanY)
		varX += dx * dx
	}
	// Zero variance cannot happen with distinct month indices, but guard the
	// division anyway.
	if varX == 0 {
		return models.ForecastResult{}, ErrInsufficientData
	}

	slope := cov / varX
	intercept := meanY - slope*meanX
	nextIndex := n + monthsAhead - 1

	return models.ForecastResult{
		NextMonthIndex: nextIndex,
		PredictedSales: slope*float64(nextIndex) + intercept,
		MonthsAhead:    monthsAhead,
		Model:          models.ForecastModel{Slope: slope, Intercept: intercept},
	}, nil
}
