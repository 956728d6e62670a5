package models

// SalesRecord is one cleaned row of the loaded sales dataset. Records are
// immutable once the dataset is initialized.
type SalesRecord struct {
	Month   string  `json:"month"`
	Product string  `json:"product"`
	Region  string  `json:"region"`
	Sales   float64 `json:"sales"`
}

// SummaryStats holds the descriptive statistics shown on the dashboard header.
type SummaryStats struct {
	TotalSales     float64 `json:"total_sales"`
	AverageSale    float64 `json:"average_sale"`
	MinSale        float64 `json:"min_sale"`
	MaxSale        float64 `json:"max_sale"`
	MonthsCount    int     `json:"months_count"`
	UniqueProducts int     `json:"unique_products"`
	UniqueRegions  int     `json:"unique_regions"`
}

// AggregateRow is one group of an aggregation: a categorical key and the sum
// of the value field over every record in that group.
type AggregateRow struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// InsightFact is one matched insight rule: the rendered sentence plus the
// values that support it.
type InsightFact struct {
	Kind    string  `json:"kind"`
	Text    string  `json:"text"`
	Key     string  `json:"key,omitempty"`
	Value   float64 `json:"value,omitempty"`
	Percent float64 `json:"percent,omitempty"`
}

// InsightStructured carries the aggregates the frontend charts are drawn from.
type InsightStructured struct {
	MonthlyTotals []AggregateRow `json:"monthly_totals"`
	ByProduct     []AggregateRow `json:"by_product"`
	ByRegion      []AggregateRow `json:"by_region"`
}

// InsightReport is the full insights payload.
type InsightReport struct {
	Insights   []string          `json:"insights"`
	Facts      []InsightFact     `json:"facts"`
	Structured InsightStructured `json:"structured"`
}

// ForecastModel is the fitted least-squares line over monthly totals.
type ForecastModel struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// ForecastResult is the projection of the fitted model N months past the
// last observed month.
type ForecastResult struct {
	NextMonthIndex int           `json:"next_month_index"`
	PredictedSales float64       `json:"predicted_sales"`
	MonthsAhead    int           `json:"months_ahead"`
	Model          ForecastModel `json:"model"`
}

// ProductShare is one row of the per-product share breakdown.
type ProductShare struct {
	Product string  `json:"product"`
	Sales   float64 `json:"sales"`
	Pct     float64 `json:"pct"`
}

// QueryAnswer is the response to a natural-language question. Details holds
// the machine-readable values behind the answer sentence, when any exist.
type QueryAnswer struct {
	Answer  string                 `json:"answer"`
	Details map[string]interface{} `json:"details,omitempty"`
}
