package handlers

import (
	"app/analytics"
	"app/dataset"

	"github.com/gofiber/fiber/v2"
)

// HandleGetSummary returns the descriptive statistics for the dashboard
// header cards.
func HandleGetSummary(c *fiber.Ctx) error {
	return c.JSON(analytics.Summarize(dataset.Get()))
}
