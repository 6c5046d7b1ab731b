package models

import "time"

// AiAnalysis contains the qualitative commentary from the Gemini model.
type AiAnalysis struct {
	Summary         string   `json:"summary"`
	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`
}

// ForecastInsightResponse is the complete structure for the forecast
// insight API response.
type ForecastInsightResponse struct {
	ReportName  string          `json:"reportName"`
	GeneratedAt time.Time       `json:"generatedAt"`
	StoreID     int             `json:"storeId"`
	Parameters  ParameterVector `json:"parameters"`
	Forecast    ForecastResult  `json:"forecast"`
	AiAnalysis  AiAnalysis      `json:"aiAnalysis"`
}
