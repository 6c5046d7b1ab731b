package forecast

import "demandboard/models"

// DefaultCurvePoints is the sweep resolution used for the dashboard
// charts when the caller does not ask for a specific one.
const DefaultCurvePoints = 100

// Forecast computes the point forecast together with the KPI fields the
// dashboard shows next to it.
func (e Engine) Forecast(baseline float64, params models.ParameterVector) models.ForecastResult {
	predicted := e.Predict(baseline, params)

	var percentDelta float64
	if baseline != 0 {
		percentDelta = (predicted - baseline) / baseline * 100
	}

	return models.ForecastResult{
		PredictedSales: predicted,
		Baseline:       baseline,
		PercentDelta:   percentDelta,
	}
}

// Curves sweeps every sensitivity dimension across its nominal range at
// the given resolution, holding the other parameters at params.
func (e Engine) Curves(baseline float64, params models.ParameterVector, points int) []models.SensitivityCurve {
	if points <= 0 {
		points = DefaultCurvePoints
	}
	bounds := models.ParameterBounds()

	curves := make([]models.SensitivityCurve, 0, len(Dimensions()))
	for _, dim := range Dimensions() {
		b := bounds[string(dim)]
		values := Linspace(b.Min, b.Max, points)
		curves = append(curves, e.SensitivityCurve(baseline, params, dim, values))
	}
	return curves
}
