package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"demandboard/config"
	"demandboard/database"
	"demandboard/forecast"
	"demandboard/handlers"
	"demandboard/history"
	"demandboard/models"
	"demandboard/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	config.AppConfig = config.Config{
		DatasetPath:  os.Getenv("DATASET_PATH"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ModelVariant: os.Getenv("MODEL_VARIANT"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Port:         os.Getenv("PORT"),
	}
	if config.AppConfig.Port == "" {
		config.AppConfig.Port = "3000"
	}

	// Pick the model variant once for the whole process.
	variant, err := forecast.ParseVariant(config.AppConfig.ModelVariant)
	if err != nil {
		log.Fatal(err)
	}
	handlers.Model = forecast.Engine{Variant: variant}

	// Load the historical dataset, from Postgres when configured,
	// otherwise from the CSV file.
	var records []models.SalesRecord
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB(config.AppConfig.DatabaseURL)
		defer database.CloseDB()

		records, err = history.LoadPostgres(context.Background(), database.GetDB())
		if err != nil {
			log.Fatalf("Failed to load dataset from Postgres: %v", err)
		}
	} else {
		path := config.AppConfig.DatasetPath
		if path == "" {
			log.Fatal("DATASET_PATH is not set and no DATABASE_URL given")
		}
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("Failed to open dataset file: %v", err)
		}
		records, err = history.LoadCSV(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to parse dataset file: %v", err)
		}
	}

	store := history.New(records)
	history.SetActive(store)
	log.Printf("📦 [DATASET] Loaded %d records across %d stores (model: %s)",
		store.Len(), len(store.StoreIDs()), handlers.Model.Variant)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
