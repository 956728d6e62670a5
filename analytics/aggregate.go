package analytics

import (
	"errors"
	"fmt"
	"sort"

	"app/models"
)

// ErrInvalidField is returned when a group or value field name is not part
// of the dataset schema.
var ErrInvalidField = errors.New("invalid field")

// SumBy groups records by a categorical field and sums a numeric field.
// Rows come back sorted descending by total; ties keep first-seen key order.
func SumBy(records []models.SalesRecord, groupField, valueField string) ([]models.AggregateRow, error) {
	keyOf, err := groupKeyFunc(groupField)
	if err != nil {
		return nil, err
	}
	if valueField != "Sales" {
		return nil, fmt.Errorf("%w: %q is not a numeric field", ErrInvalidField, valueField)
	}

	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, r := range records {
		key := keyOf(r)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += r.Sales
	}

	rows := make([]models.AggregateRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, models.AggregateRow{Key: key, Total: totals[key]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	return rows, nil
}

func groupKeyFunc(field string) (func(models.SalesRecord) string, error) {
	switch field {
	case "Product":
		return func(r models.SalesRecord) string { return r.Product }, nil
	case "Region":
		return func(r models.SalesRecord) string { return r.Region }, nil
	case "Month", "Date":
		return func(r models.SalesRecord) string { return r.Month }, nil
	}
	return nil, fmt.Errorf("%w: %q is not a group field", ErrInvalidField, field)
}

// MonthlyTotals sums sales per month, keeping first-seen month order rather
// than sorting by total. Records with no month label are ignored.
func MonthlyTotals(records []models.SalesRecord) []models.AggregateRow {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, r := range records {
		if r.Month == "" {
			continue
		}
		if _, seen := totals[r.Month]; !seen {
			order = append(order, r.Month)
		}
		totals[r.Month] += r.Sales
	}

	rows := make([]models.AggregateRow, 0, len(order))
	for _, month := range order {
		rows = append(rows, models.AggregateRow{Key: month, Total: totals[month]})
	}
	return rows
}
