package handlers

import (
	"log"

	"app/analytics"
	"app/dataset"

	"github.com/gofiber/fiber/v2"
)

// HandleQuery answers a natural-language question about the dataset.
// Unrecognized questions get the fixed fallback answer with status 200.
func HandleQuery(c *fiber.Ctx) error {
	q := c.Query("q")
	answer := analytics.AnswerQuery(dataset.Get(), q)
	log.Printf("[QUERY] q=%q -> %s", q, answer.Answer)
	return c.JSON(answer)
}
