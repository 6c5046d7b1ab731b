package forecast

import (
	"fmt"
	"strings"

	"demandboard/models"
)

// Dimension names one sweepable input of the model. The holiday flag has
// only two states and is not swept as a curve.
type Dimension string

const (
	DimTemperature  Dimension = "temperature"
	DimFuelPrice    Dimension = "fuel_price"
	DimCPI          Dimension = "cpi"
	DimUnemployment Dimension = "unemployment"
)

// Dimensions lists the sweepable inputs in dashboard chart order.
func Dimensions() []Dimension {
	return []Dimension{DimTemperature, DimFuelPrice, DimCPI, DimUnemployment}
}

// ParseDimension maps a request string to a sweepable dimension.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(strings.ToLower(strings.TrimSpace(s))) {
	case DimTemperature:
		return DimTemperature, nil
	case DimFuelPrice:
		return DimFuelPrice, nil
	case DimCPI:
		return DimCPI, nil
	case DimUnemployment:
		return DimUnemployment, nil
	default:
		return "", fmt.Errorf("unknown sensitivity dimension %q", s)
	}
}

func withValue(params models.ParameterVector, dim Dimension, value float64) models.ParameterVector {
	switch dim {
	case DimTemperature:
		params.Temperature = value
	case DimFuelPrice:
		params.FuelPrice = value
	case DimCPI:
		params.CPI = value
	case DimUnemployment:
		params.Unemployment = value
	}
	return params
}

// SensitivityCurve evaluates the forecast at each value in values, with
// all parameters except dim held fixed. The result has exactly
// len(values) points in the same order; values are taken as given, with
// no sorting or deduplication.
func (e Engine) SensitivityCurve(baseline float64, params models.ParameterVector, dim Dimension, values []float64) models.SensitivityCurve {
	points := make([]models.CurvePoint, len(values))
	for i, v := range values {
		points[i] = models.CurvePoint{
			Value:          v,
			PredictedSales: e.Predict(baseline, withValue(params, dim, v)),
		}
	}
	return models.SensitivityCurve{Dimension: string(dim), Points: points}
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n <= 0 yields an empty slice; n == 1 yields just lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}

	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}
