package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"demandboard/config"
	"demandboard/history"
	"demandboard/models"
	"demandboard/utils"
)

// ForecastInsightInput defines the expected input for the AI commentary
// endpoint.
type ForecastInsightInput struct {
	StoreID    int                    `json:"storeId"`
	Parameters models.ParameterVector `json:"parameters"`
}

// HandleForecastInsight generates qualitative commentary on a forecast
// using Gemini: what drives the predicted change and which inputs help
// or hurt demand at the chosen operating point.
func HandleForecastInsight(c *fiber.Ctx) error {
	ctx := context.Background()

	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "AI insight is not configured"})
	}

	var input ForecastInsightInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	// 1. Compute the forecast the commentary is about.
	baseline, err := history.Active().Baseline(input.StoreID)
	if err != nil {
		return historyError(c, err)
	}
	result := Model.Forecast(baseline, input.Parameters)

	// 2. Pull the recent trend for context.
	recent, err := history.Active().RecentWindow(input.StoreID, DefaultRecentWindow)
	if err != nil {
		return historyError(c, err)
	}

	// 3. Construct the prompt for the Gemini API.
	prompt := constructInsightPrompt(input.StoreID, input.Parameters, result, recent)

	// 4. Call the Gemini API.
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to connect to AI service"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate insight from AI"})
	}

	// 5. Parse the response and format for the frontend.
	analysis, err := parseInsightResponse(resp)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	response := models.ForecastInsightResponse{
		ReportName:  "Demand Forecast Insight",
		GeneratedAt: time.Now(),
		StoreID:     input.StoreID,
		Parameters:  input.Parameters,
		Forecast:    result,
		AiAnalysis:  *analysis,
	}

	return c.JSON(fiber.Map{"success": true, "data": response})
}

// constructInsightPrompt creates a detailed prompt for the Gemini API.
func constructInsightPrompt(storeID int, params models.ParameterVector, result models.ForecastResult, recent []models.SalesRecord) string {
	trendStr := ""
	for _, r := range recent {
		trendStr += fmt.Sprintf("Week of %s: %s\n", r.Date.Format("2006-01-02"), utils.FormatCurrency(r.WeeklySales))
	}
	if trendStr == "" {
		trendStr = "No recent sales data available."
	}

	jsonFormat := `{"summary":"string","positive_factors":["string",...],"negative_factors":["string",...]}`

	return fmt.Sprintf(`
        You are an expert retail demand analyst. Explain a weekly sales forecast for a store in plain language.

        **Forecast Context:**
        - Store: %d
        - Average weekly sales (baseline): %s
        - Predicted weekly sales: %s (%s vs baseline)
        - Holiday week: %t
        - Temperature: %.1f °F
        - Fuel price: $%.2f/gal
        - CPI: %.1f
        - Unemployment rate: %.1f%%

        **Recent Weekly Sales:**
        %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, storeID,
		utils.FormatCurrency(result.Baseline),
		utils.FormatCurrency(result.PredictedSales),
		utils.FormatPercent(result.PercentDelta),
		params.Holiday, params.Temperature, params.FuelPrice, params.CPI, params.Unemployment,
		trendStr, jsonFormat)
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}

// parseInsightResponse parses the JSON from Gemini into an AiAnalysis.
func parseInsightResponse(resp *genai.GenerateContentResponse) (*models.AiAnalysis, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content received from AI")
	}

	var geminiText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			geminiText += string(txt)
		}
	}
	if geminiText == "" {
		return nil, fmt.Errorf("no text content received from AI")
	}

	// Clean the response to get only the JSON object.
	jsonStr := extractJSON(geminiText)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini response: %s", geminiText)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var analysis models.AiAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		log.Printf("Error parsing Gemini JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI insight data")
	}

	return &analysis, nil
}
