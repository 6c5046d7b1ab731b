package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"demandboard/forecast"
	"demandboard/history"
	"demandboard/models"
)

// Model is the prediction engine the service runs. The variant is fixed
// at startup from MODEL_VARIANT; requests never switch it.
var Model forecast.Engine

// ForecastInput defines the expected input for computing a forecast.
type ForecastInput struct {
	StoreID     int                    `json:"storeId"`
	Parameters  models.ParameterVector `json:"parameters"`
	CurvePoints int                    `json:"curvePoints"`
}

// HandleForecast computes the point forecast for a store at the given
// operating point, plus the four sensitivity curves for charting.
func HandleForecast(c *fiber.Ctx) error {
	var input ForecastInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	baseline, err := history.Active().Baseline(input.StoreID)
	if err != nil {
		return historyError(c, err)
	}

	result := Model.Forecast(baseline, input.Parameters)
	curves := Model.Curves(baseline, input.Parameters, input.CurvePoints)

	log.Printf("📈 [FORECAST] Store %d: baseline %.2f -> predicted %.2f (%+.2f%%)",
		input.StoreID, result.Baseline, result.PredictedSales, result.PercentDelta)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"forecast": result,
			"curves":   curves,
		},
	})
}

// queryParameters builds the fixed operating point from query params,
// falling back to the dashboard defaults.
func queryParameters(c *fiber.Ctx) models.ParameterVector {
	defaults := models.DefaultParameters()
	return models.ParameterVector{
		Temperature:  c.QueryFloat("temperature", defaults.Temperature),
		FuelPrice:    c.QueryFloat("fuel_price", defaults.FuelPrice),
		CPI:          c.QueryFloat("cpi", defaults.CPI),
		Unemployment: c.QueryFloat("unemployment", defaults.Unemployment),
		Holiday:      c.QueryBool("holiday", defaults.Holiday),
	}
}

// HandleGetSensitivity returns a single sensitivity curve for one store
// and one dimension, swept across [from, to].
func HandleGetSensitivity(c *fiber.Ctx) error {
	storeID, err := storeIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid store id"})
	}

	dim, err := forecast.ParseDimension(c.Query("dimension"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	bounds := models.ParameterBounds()[string(dim)]
	from := c.QueryFloat("from", bounds.Min)
	to := c.QueryFloat("to", bounds.Max)
	points := c.QueryInt("points", forecast.DefaultCurvePoints)
	if points <= 0 || points > 10000 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "points must be between 1 and 10000"})
	}

	baseline, err := history.Active().Baseline(storeID)
	if err != nil {
		return historyError(c, err)
	}

	curve := Model.SensitivityCurve(baseline, queryParameters(c), dim, forecast.Linspace(from, to, points))

	return c.JSON(fiber.Map{"success": true, "data": curve})
}

// HandleGetParameters exposes the slider defaults and nominal bounds so
// the UI stays in sync with the model.
func HandleGetParameters(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"defaults": models.DefaultParameters(),
			"bounds":   models.ParameterBounds(),
		},
	})
}
