package handlers

import (
	"errors"
	"log"

	"app/analytics"
	"app/dataset"

	"github.com/gofiber/fiber/v2"
)

// HandleSalesByProduct returns per-product sales totals for the bar chart.
func HandleSalesByProduct(c *fiber.Ctx) error {
	return aggregateResponse(c, "Product")
}

// HandleSalesByRegion returns per-region sales totals for the bar chart.
func HandleSalesByRegion(c *fiber.Ctx) error {
	return aggregateResponse(c, "Region")
}

// HandleSalesByField aggregates by an arbitrary field from the path, e.g.
// GET /by/Month. Unknown fields are a client error.
func HandleSalesByField(c *fiber.Ctx) error {
	return aggregateResponse(c, c.Params("field"))
}

func aggregateResponse(c *fiber.Ctx, field string) error {
	rows, err := analytics.SumBy(dataset.Get(), field, "Sales")
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidField) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("[AGGREGATE] Error aggregating by %s: %v", field, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to aggregate sales"})
	}
	return c.JSON(rows)
}

// HandleMonthlyTotals returns per-month sales totals in the order the
// months appear in the dataset, which is what the trend chart expects.
func HandleMonthlyTotals(c *fiber.Ctx) error {
	return c.JSON(analytics.MonthlyTotals(dataset.Get()))
}
