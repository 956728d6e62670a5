package analytics

import (
	"fmt"
	"math"
	"sort"

	"app/models"
	"app/utils"
)

// Insight fact kinds.
const (
	KindTopProduct = "top-product"
	KindTopRegion  = "top-region"
	KindTrend      = "trend"
	KindAnomaly    = "anomaly"
)

const (
	topChangeCount    = 2
	anomalyZThreshold = 1.5
	maxInsights       = 6
)

// GenerateInsights runs the fixed rule list against the dataset and returns
// up to maxInsights sentences, the facts behind them, and the aggregates the
// frontend charts are drawn from. No matching rule is not an error; the
// insight list is simply empty.
func GenerateInsights(records []models.SalesRecord) models.InsightReport {
	facts := make([]models.InsightFact, 0, maxInsights)

	if fact, ok := topProductFact(records); ok {
		facts = append(facts, fact)
	}
	if fact, ok := topRegionFact(records); ok {
		facts = append(facts, fact)
	}
	facts = append(facts, monthOverMonthFacts(records, topChangeCount)...)
	facts = append(facts, anomalyFacts(records, anomalyZThreshold)...)

	if len(facts) > maxInsights {
		facts = facts[:maxInsights]
	}

	sentences := make([]string, 0, len(facts))
	for _, fact := range facts {
		sentences = append(sentences, fact.Text)
	}

	byProduct, _ := SumBy(records, "Product", "Sales")
	byRegion, _ := SumBy(records, "Region", "Sales")

	return models.InsightReport{
		Insights: sentences,
		Facts:    facts,
		Structured: models.InsightStructured{
			MonthlyTotals: MonthlyTotals(records),
			ByProduct:     byProduct,
			ByRegion:      byRegion,
		},
	}
}

func topProductFact(records []models.SalesRecord) (models.InsightFact, bool) {
	agg, err := SumBy(records, "Product", "Sales")
	if err != nil || len(agg) == 0 || agg[0].Key == "" {
		return models.InsightFact{}, false
	}

	var total float64
	for _, row := range agg {
		total += row.Total
	}
	pct := 0.0
	if total != 0 {
		pct = agg[0].Total / total * 100
	}

	return models.InsightFact{
		Kind: KindTopProduct,
		Text: fmt.Sprintf("Top product: %s with %s sales (%s of total).",
			agg[0].Key, utils.FormatComma(int64(agg[0].Total)), utils.FormatPercent(pct)),
		Key:     agg[0].Key,
		Value:   agg[0].Total,
		Percent: pct,
	}, true
}

func topRegionFact(records []models.SalesRecord) (models.InsightFact, bool) {
	agg, err := SumBy(records, "Region", "Sales")
	if err != nil || len(agg) == 0 || agg[0].Key == "" {
		return models.InsightFact{}, false
	}

	return models.InsightFact{
		Kind: KindTopRegion,
		Text: fmt.Sprintf("Top region: %s with %s sales.",
			agg[0].Key, utils.FormatComma(int64(agg[0].Total))),
		Key:   agg[0].Key,
		Value: agg[0].Total,
	}, true
}

// monthChange is an intermediate month-over-month percent change.
type monthChange struct {
	month string
	total float64
	pct   float64
}

func monthChanges(records []models.SalesRecord) []monthChange {
	monthly := MonthlyTotals(records)
	changes := make([]monthChange, 0, len(monthly))
	for i := 1; i < len(monthly); i++ {
		prev := monthly[i-1].Total
		if prev == 0 {
			continue
		}
		changes = append(changes, monthChange{
			month: monthly[i].Key,
			total: monthly[i].Total,
			pct:   (monthly[i].Total - prev) / prev * 100,
		})
	}
	return changes
}

func monthOverMonthFacts(records []models.SalesRecord, topN int) []models.InsightFact {
	changes := monthChanges(records)
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].pct > changes[j].pct
	})
	if len(changes) > topN {
		changes = changes[:topN]
	}

	facts := make([]models.InsightFact, 0, len(changes))
	for _, ch := range changes {
		facts = append(facts, models.InsightFact{
			Kind: KindTrend,
			Text: fmt.Sprintf("Month-over-month change: %s changed by %s (total %s).",
				ch.month, utils.FormatPercent(ch.pct), utils.FormatComma(int64(ch.total))),
			Key:     ch.month,
			Value:   ch.total,
			Percent: ch.pct,
		})
	}
	return facts
}

func anomalyFacts(records []models.SalesRecord, zThresh float64) []models.InsightFact {
	monthly := MonthlyTotals(records)
	if len(monthly) < 2 {
		return nil
	}

	var sum float64
	for _, row := range monthly {
		sum += row.Total
	}
	mean := sum / float64(len(monthly))

	var variance float64
	for _, row := range monthly {
		d := row.Total - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(len(monthly)))
	if std == 0 {
		return nil
	}

	var facts []models.InsightFact
	for _, row := range monthly {
		z := (row.Total - mean) / std
		if math.Abs(z) > zThresh {
			facts = append(facts, models.InsightFact{
				Kind: KindAnomaly,
				Text: fmt.Sprintf("Anomaly detected: %s had sales %s (z=%.2f).",
					row.Key, utils.FormatComma(int64(row.Total)), z),
				Key:     row.Key,
				Value:   row.Total,
				Percent: z,
			})
		}
	}
	return facts
}
