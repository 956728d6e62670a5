package analytics

import "app/models"

// Summarize computes count, total, mean, min, max and distinct-value counts
// over the dataset. An empty dataset yields a zero-valued summary.
func Summarize(records []models.SalesRecord) models.SummaryStats {
	var s models.SummaryStats
	if len(records) == 0 {
		return s
	}

	months := make(map[string]struct{})
	products := make(map[string]struct{})
	regions := make(map[string]struct{})

	s.MinSale = records[0].Sales
	s.MaxSale = records[0].Sales
	for _, r := range records {
		s.TotalSales += r.Sales
		if r.Sales < s.MinSale {
			s.MinSale = r.Sales
		}
		if r.Sales > s.MaxSale {
			s.MaxSale = r.Sales
		}
		if r.Month != "" {
			months[r.Month] = struct{}{}
		}
		if r.Product != "" {
			products[r.Product] = struct{}{}
		}
		if r.Region != "" {
			regions[r.Region] = struct{}{}
		}
	}

	s.AverageSale = s.TotalSales / float64(len(records))
	s.MonthsCount = len(months)
	s.UniqueProducts = len(products)
	s.UniqueRegions = len(regions)
	return s
}
