package models

import "time"

// --- Core Models ---

// SalesRecord is one week of observed sales for a single store, together
// with the exogenous conditions recorded for that week.
type SalesRecord struct {
	StoreID      int       `json:"store_id"`
	Date         time.Time `json:"date"`
	WeeklySales  float64   `json:"weekly_sales"`
	HolidayFlag  bool      `json:"holiday_flag"`
	Temperature  float64   `json:"temperature"`
	FuelPrice    float64   `json:"fuel_price"`
	CPI          float64   `json:"cpi"`
	Unemployment float64   `json:"unemployment"`
}

// ParameterVector is the operating point a forecast is evaluated at.
type ParameterVector struct {
	Temperature  float64 `json:"temperature"`
	FuelPrice    float64 `json:"fuel_price"`
	CPI          float64 `json:"cpi"`
	Unemployment float64 `json:"unemployment"`
	Holiday      bool    `json:"holiday"`
}

// DefaultParameters returns the neutral operating point the dashboard
// starts from.
func DefaultParameters() ParameterVector {
	return ParameterVector{
		Temperature:  70.0,
		FuelPrice:    3.5,
		CPI:          220.0,
		Unemployment: 7.0,
		Holiday:      false,
	}
}

// ParameterRange is the nominal slider range for one input dimension.
// The prediction model itself accepts values outside these ranges.
type ParameterRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// ParameterBounds maps each numeric dimension to its nominal range.
func ParameterBounds() map[string]ParameterRange {
	return map[string]ParameterRange{
		"temperature":  {Min: 20, Max: 120, Default: 70},
		"fuel_price":   {Min: 2, Max: 5, Default: 3.5},
		"cpi":          {Min: 200, Max: 300, Default: 220},
		"unemployment": {Min: 3, Max: 15, Default: 7},
	}
}

// ForecastResult is the point forecast for one parameter vector.
type ForecastResult struct {
	PredictedSales float64 `json:"predicted_sales"`
	Baseline       float64 `json:"baseline"`
	PercentDelta   float64 `json:"percent_delta"`
}

// CurvePoint pairs one input value with the forecast evaluated there.
type CurvePoint struct {
	Value          float64 `json:"value"`
	PredictedSales float64 `json:"predicted_sales"`
}

// SensitivityCurve is the forecast as a function of one varied dimension,
// all other parameters held fixed. Points keep the order of the sweep.
type SensitivityCurve struct {
	Dimension string       `json:"dimension"`
	Points    []CurvePoint `json:"points"`
}

// StoreSummary is the KPI block for one selected store.
type StoreSummary struct {
	StoreID     int           `json:"store_id"`
	RecordCount int           `json:"record_count"`
	Baseline    float64       `json:"baseline"`
	FirstDate   time.Time     `json:"first_date"`
	LastDate    time.Time     `json:"last_date"`
	RecentSales []SalesRecord `json:"recent_sales"`
}
