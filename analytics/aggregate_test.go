package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"app/models"
)

// sample mirrors the small synthetic dataset used throughout the analytics
// tests.
var sample = []models.SalesRecord{
	{Month: "Jan", Product: "A", Region: "North", Sales: 100},
	{Month: "Feb", Product: "A", Region: "North", Sales: 120},
	{Month: "Mar", Product: "B", Region: "South", Sales: 80},
	{Month: "Mar", Product: "A", Region: "North", Sales: 90},
}

func TestSumByProduct(t *testing.T) {
	rows, err := SumBy(sample, "Product", "Sales")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Key)
	assert.Equal(t, 310.0, rows[0].Total)
	assert.Equal(t, "B", rows[1].Key)
	assert.Equal(t, 80.0, rows[1].Total)
}

func TestSumByInvalidGroupField(t *testing.T) {
	_, err := SumBy(sample, "Quantity", "Sales")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestSumByInvalidValueField(t *testing.T) {
	_, err := SumBy(sample, "Product", "Revenue")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestSumByPartitionsDatasetTotal(t *testing.T) {
	for _, field := range []string{"Product", "Region", "Month"} {
		rows, err := SumBy(sample, field, "Sales")
		assert.NoError(t, err)

		var sum float64
		for _, row := range rows {
			sum += row.Total
		}
		assert.Equal(t, 390.0, sum, "groups by %s must partition the dataset", field)
	}
}

func TestSumByTieKeepsFirstSeenOrder(t *testing.T) {
	tied := []models.SalesRecord{
		{Month: "Jan", Product: "X", Region: "East", Sales: 50},
		{Month: "Jan", Product: "Y", Region: "West", Sales: 50},
		{Month: "Jan", Product: "Z", Region: "East", Sales: 50},
	}
	rows, err := SumBy(tied, "Product", "Sales")
	assert.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, []string{rows[0].Key, rows[1].Key, rows[2].Key})
}

func TestSumByEmptyDataset(t *testing.T) {
	rows, err := SumBy(nil, "Product", "Sales")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMonthlyTotalsKeepFirstSeenOrder(t *testing.T) {
	rows := MonthlyTotals(sample)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Jan", rows[0].Key)
	assert.Equal(t, "Feb", rows[1].Key)
	assert.Equal(t, "Mar", rows[2].Key)
	assert.Equal(t, 170.0, rows[2].Total)
}

func TestMonthlyTotalsSkipsUnlabeledRecords(t *testing.T) {
	mixed := append([]models.SalesRecord{{Product: "A", Sales: 999}}, sample...)
	rows := MonthlyTotals(mixed)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Jan", rows[0].Key)
}
