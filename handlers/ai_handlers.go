package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"app/analytics"
	"app/config"
	"app/dataset"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandleAskAnalyst answers a free-form question with a Gemini-written
// narrative. The deterministic computations run first and their output is
// handed to the model as context, so the narrative stays grounded in the
// actual numbers.
// POST /ask
func HandleAskAnalyst(c *fiber.Ctx) error {
	var req models.AIAnalystRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Prompt is required"})
	}

	apiKey := config.AppConfig.GeminiAPIKey
	if apiKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI analyst is not configured"})
	}

	records := dataset.Get()
	answer := analytics.AnswerQuery(records, req.Prompt)
	report := analytics.GenerateInsights(records)

	dataContext, err := json.Marshal(fiber.Map{
		"summary":  analytics.Summarize(records),
		"answer":   answer,
		"insights": report.Insights,
	})
	if err != nil {
		log.Printf("[ASK] Error marshaling data context: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare analysis context"})
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("[ASK] Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize AI client"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	prompt := fmt.Sprintf(
		`You are a sales analyst. Answer the user's question in two or three sentences using only the data provided. The user asked: %q

Data: %s`,
		req.Prompt, dataContext,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("[ASK] Error generating analysis: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate analysis"})
	}

	analysis := ""
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		analysis = strings.TrimSpace(fmt.Sprint(resp.Candidates[0].Content.Parts[0]))
	}
	if analysis == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI returned an empty analysis"})
	}

	return c.JSON(fiber.Map{
		"answer":   answer.Answer,
		"analysis": analysis,
	})
}
