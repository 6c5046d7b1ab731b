package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"demandboard/history"
)

// RequestLogger logs method, path, status and duration for each request.
func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("📡 [HTTP] %s %s -> %d (%s)", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
	return err
}

// DatasetRequired rejects requests until the historical dataset has been
// loaded. Guards against serving forecasts from an empty store.
func DatasetRequired(c *fiber.Ctx) error {
	if history.Active() == nil || history.Active().Len() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "Historical dataset is not loaded",
		})
	}
	return c.Next()
}
