package handlers

import (
	"app/analytics"
	"app/dataset"

	"github.com/gofiber/fiber/v2"
)

// HandleGetInsights runs the insight rules and returns the sentences, the
// facts behind them, and the chart aggregates in one payload.
func HandleGetInsights(c *fiber.Ctx) error {
	return c.JSON(analytics.GenerateInsights(dataset.Get()))
}
