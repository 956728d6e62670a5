package analytics

import (
	"fmt"
	"sort"
	"strings"

	"app/models"
	"app/utils"
)

// FallbackAnswer is returned for any question the matcher does not
// recognize. Not understanding a question is a normal answer, not an error.
const FallbackAnswer = "Sorry — I couldn't understand that. Try: 'top product', 'top region', 'total sales', 'month growth'."

const emptyQueryAnswer = "Please ask a question about the data (example: 'Which product sold the most?')."

// AnswerQuery matches a lower-cased question against a fixed set of keyword
// patterns and runs the corresponding computation. The first matching
// pattern wins.
func AnswerQuery(records []models.SalesRecord, query string) models.QueryAnswer {
	q := strings.ToLower(strings.TrimSpace(query))

	switch {
	case q == "":
		return models.QueryAnswer{Answer: emptyQueryAnswer}

	case strings.Contains(q, "total") && strings.Contains(q, "sale"):
		return totalSalesAnswer(records)

	case strings.Contains(q, "product") && containsAny(q, "top", "most", "best", "largest"):
		return topGroupAnswer(records, "Product", "Top product is %s with %s sales.", "product")

	case strings.Contains(q, "region") && containsAny(q, "top", "most", "largest"):
		return topGroupAnswer(records, "Region", "Top region is %s with %s sales.", "region")

	case strings.Contains(q, "month") && containsAny(q, "high", "most", "highest", "top"):
		return highestMonthAnswer(records)

	case containsAny(q, "growth", "increase") || (strings.Contains(q, "month") && strings.Contains(q, "change")):
		return growthAnswer(records)

	case strings.Contains(q, "share") ||
		(strings.Contains(q, "what") && strings.Contains(q, "percent") && strings.Contains(q, "product")):
		return productShareAnswer(records)
	}

	return models.QueryAnswer{Answer: FallbackAnswer}
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func totalSalesAnswer(records []models.SalesRecord) models.QueryAnswer {
	var total float64
	for _, r := range records {
		total += r.Sales
	}
	return models.QueryAnswer{
		Answer:  fmt.Sprintf("Total sales: %s.", utils.FormatComma(int64(total))),
		Details: map[string]interface{}{"total_sales": total},
	}
}

func topGroupAnswer(records []models.SalesRecord, field, format, detailKey string) models.QueryAnswer {
	agg, err := SumBy(records, field, "Sales")
	if err != nil || len(agg) == 0 {
		return models.QueryAnswer{Answer: FallbackAnswer}
	}
	top := agg[0]
	return models.QueryAnswer{
		Answer: fmt.Sprintf(format, top.Key, utils.FormatComma(int64(top.Total))),
		Details: map[string]interface{}{
			detailKey: top.Key,
			"sales":   top.Total,
		},
	}
}

func highestMonthAnswer(records []models.SalesRecord) models.QueryAnswer {
	monthly := MonthlyTotals(records)
	if len(monthly) == 0 {
		return models.QueryAnswer{Answer: FallbackAnswer}
	}
	top := monthly[0]
	for _, row := range monthly[1:] {
		if row.Total > top.Total {
			top = row
		}
	}
	return models.QueryAnswer{
		Answer: fmt.Sprintf("Highest-sales month is %s with %s sales.",
			top.Key, utils.FormatComma(int64(top.Total))),
		Details: map[string]interface{}{
			"month": top.Key,
			"sales": top.Total,
		},
	}
}

func growthAnswer(records []models.SalesRecord) models.QueryAnswer {
	changes := monthChanges(records)
	if len(changes) == 0 {
		return models.QueryAnswer{Answer: "No month-over-month data available to compute growth."}
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].pct > changes[j].pct
	})
	top := changes[0]
	return models.QueryAnswer{
		Answer: fmt.Sprintf("Biggest month-over-month increase: %s with %s (total %s).",
			top.month, utils.FormatPercent(top.pct), utils.FormatComma(int64(top.total))),
		Details: map[string]interface{}{
			"month":      top.month,
			"pct_change": top.pct,
			"sales":      top.total,
		},
	}
}

func productShareAnswer(records []models.SalesRecord) models.QueryAnswer {
	agg, err := SumBy(records, "Product", "Sales")
	if err != nil || len(agg) == 0 {
		return models.QueryAnswer{Answer: FallbackAnswer}
	}

	var total float64
	for _, row := range agg {
		total += row.Total
	}

	shares := make([]models.ProductShare, 0, len(agg))
	for _, row := range agg {
		pct := 0.0
		if total != 0 {
			pct = row.Total / total * 100
		}
		shares = append(shares, models.ProductShare{Product: row.Key, Sales: row.Total, Pct: pct})
	}
	return models.QueryAnswer{
		Answer:  "Product share computed.",
		Details: map[string]interface{}{"shares": shares},
	}
}
