package forecast

import (
	"fmt"
	"math"
	"strings"

	"demandboard/models"
)

// Additive model coefficients. Fixed constants, not fitted at runtime;
// the store baseline takes the place of a global intercept.
const (
	CoefHoliday   = 6634.0369
	CoefFuel      = 11830.0
	CoefCPI       = -9.8499
	CoefUnemp     = -418.9919
	TempOptimal   = 70.0
	TempCurvature = -196.8391
)

// Multiplicative model factors. Every effect scales the baseline, so the
// prediction keeps the baseline's sign inside the nominal input ranges.
const (
	HolidayFactor = 1.15
	TempSpread    = 40.0
	FuelNeutral   = 3.5
	FuelSlope     = 0.05
	CPINeutral    = 220.0
	CPISlope      = 0.002
	UnempNeutral  = 7.0
	UnempSlope    = 0.04
)

// Variant selects which prediction model the engine runs. The two models
// produce materially different numbers and must never be mixed.
type Variant int

const (
	// VariantAdditive is the canonical model: a linear combination of
	// effects on top of the store baseline, with a quadratic temperature
	// penalty centered on the optimum.
	VariantAdditive Variant = iota
	// VariantMultiplicative expresses each effect as a relative scaling
	// of the baseline.
	VariantMultiplicative
)

func (v Variant) String() string {
	switch v {
	case VariantMultiplicative:
		return "multiplicative"
	default:
		return "additive"
	}
}

// ParseVariant maps a config string to a model variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "additive":
		return VariantAdditive, nil
	case "multiplicative":
		return VariantMultiplicative, nil
	default:
		return VariantAdditive, fmt.Errorf("unknown model variant %q", s)
	}
}

// Engine evaluates the demand model. It is stateless apart from the
// chosen variant and safe for concurrent use.
type Engine struct {
	Variant Variant
}

// Predict computes the point forecast for one parameter vector. It is a
// pure numeric function: out-of-range inputs are extrapolated, never
// rejected or clamped. Range validation belongs to the caller.
func (e Engine) Predict(baseline float64, params models.ParameterVector) float64 {
	if e.Variant == VariantMultiplicative {
		return e.predictMultiplicative(baseline, params)
	}
	return e.predictAdditive(baseline, params)
}

func (e Engine) predictAdditive(baseline float64, params models.ParameterVector) float64 {
	predicted := baseline +
		tempEffect(params.Temperature) +
		CoefFuel*params.FuelPrice +
		CoefCPI*params.CPI +
		CoefUnemp*params.Unemployment
	if params.Holiday {
		predicted += CoefHoliday
	}
	return predicted
}

// tempEffect is the downward parabola around the optimal temperature.
// Always <= 0, zero exactly at the optimum.
func tempEffect(t float64) float64 {
	d := t - TempOptimal
	return TempCurvature * d * d
}

func (e Engine) predictMultiplicative(baseline float64, params models.ParameterVector) float64 {
	predicted := baseline *
		tempFactor(params.Temperature) *
		(1 - (params.FuelPrice-FuelNeutral)*FuelSlope) *
		(1 + (params.CPI-CPINeutral)*CPISlope) *
		(1 - (params.Unemployment-UnempNeutral)*UnempSlope)
	if params.Holiday {
		predicted *= HolidayFactor
	}
	return predicted
}

// tempFactor is the Gaussian temperature scaling, peaking at 1.0 at the
// optimal temperature.
func tempFactor(t float64) float64 {
	d := t - TempOptimal
	return math.Exp(-(d * d) / (2 * TempSpread * TempSpread))
}
