package handlers

import (
	"app/dataset"

	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports process liveness and how many records are loaded.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"rows":   len(dataset.Get()),
	})
}
