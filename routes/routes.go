package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HandleHealth)

	// Summary and aggregations
	app.Get("/summary", handlers.HandleGetSummary)
	app.Get("/by-product", handlers.HandleSalesByProduct)
	app.Get("/by-region", handlers.HandleSalesByRegion)
	app.Get("/by/:field", handlers.HandleSalesByField)
	app.Get("/monthly", handlers.HandleMonthlyTotals)

	// Derived views
	app.Get("/insights", handlers.HandleGetInsights)
	app.Get("/query", handlers.HandleQuery)
	app.Get("/forecast", handlers.HandleForecast)

	// AI analyst
	app.Post("/ask", handlers.HandleAskAnalyst)
}
