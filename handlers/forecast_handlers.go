package handlers

import (
	"errors"
	"log"

	"app/analytics"
	"app/dataset"

	"github.com/gofiber/fiber/v2"
)

// HandleForecast fits the regression over monthly totals and projects
// months_ahead periods forward (default 1).
func HandleForecast(c *fiber.Ctx) error {
	monthsAhead := c.QueryInt("months_ahead", 1)
	if monthsAhead < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "months_ahead must be at least 1"})
	}

	records := dataset.Get()
	result, err := analytics.Forecast(records, monthsAhead)
	if err != nil {
		if errors.Is(err, analytics.ErrInsufficientData) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":          err.Error(),
				"monthly_totals": analytics.MonthlyTotals(records),
			})
		}
		log.Printf("[FORECAST] Error fitting model: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate forecast"})
	}

	return c.JSON(fiber.Map{
		"monthly_totals": analytics.MonthlyTotals(records),
		"forecast":       result,
	})
}
