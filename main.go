package main

import (
	"context"
	"log"
	"os"

	"app/config"
	"app/dataset"
	"app/middleware"
	"app/models"
	"app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Set up the application configuration
	config.AppConfig = config.Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":3000"),
		DataPath:     getEnv("DATA_PATH", "data/sales_data.csv"),
		DataSource:   getEnv("DATA_SOURCE", "csv"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}

	// Load the sales dataset once; it is read-only for the process lifetime.
	var records []models.SalesRecord
	switch config.AppConfig.DataSource {
	case "postgres":
		if config.AppConfig.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		records, err = dataset.LoadPostgres(context.Background(), config.AppConfig.DatabaseURL)
	default:
		records, err = dataset.LoadCSV(config.AppConfig.DataPath)
	}
	if err != nil {
		log.Fatalf("Failed to load sales data: %v", err)
	}
	dataset.Init(records)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())
	app.Use(middleware.RequestLogger)

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(config.AppConfig.ListenAddr))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
