package routes

import (
	"demandboard/handlers"
	"demandboard/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HandleHealth)

	api := app.Group("/api/v1", middleware.RequestLogger, middleware.DatasetRequired)

	// --- Model Metadata ---
	api.Get("/parameters", handlers.HandleGetParameters)

	// --- Stores ---
	stores := api.Group("/stores")
	stores.Get("/", handlers.HandleListStores)
	stores.Get("/:storeId/summary", handlers.HandleGetStoreSummary)
	stores.Get("/:storeId/records", handlers.HandleGetStoreRecords)
	stores.Get("/:storeId/sensitivity", handlers.HandleGetSensitivity)

	// --- Forecasting ---
	api.Post("/forecast", handlers.HandleForecast)
	api.Post("/forecast/insight", handlers.HandleForecastInsight)
}
