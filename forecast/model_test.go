package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"demandboard/models"
)

func neutralParams() models.ParameterVector {
	return models.ParameterVector{
		Temperature:  70,
		FuelPrice:    3.5,
		CPI:          220,
		Unemployment: 7,
		Holiday:      false,
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	assert.NoError(t, err)
	assert.Equal(t, VariantAdditive, v)

	v, err = ParseVariant("Additive")
	assert.NoError(t, err)
	assert.Equal(t, VariantAdditive, v)

	v, err = ParseVariant("multiplicative")
	assert.NoError(t, err)
	assert.Equal(t, VariantMultiplicative, v)

	_, err = ParseVariant("blended")
	assert.Error(t, err)
}

func TestAdditiveEndToEnd(t *testing.T) {
	engine := Engine{Variant: VariantAdditive}
	params := neutralParams()
	params.Holiday = true

	got := engine.Predict(20000, params)
	want := 20000 + CoefHoliday + CoefFuel*3.5 + CoefCPI*220 + CoefUnemp*7

	assert.InDelta(t, want, got, 1e-9)
	assert.InDelta(t, 62939.1156, got, 1e-6)
}

func TestAdditiveHolidayDelta(t *testing.T) {
	engine := Engine{Variant: VariantAdditive}
	params := neutralParams()

	off := engine.Predict(18000, params)
	params.Holiday = true
	on := engine.Predict(18000, params)

	assert.InDelta(t, CoefHoliday, on-off, 1e-9)
}

func TestAdditiveTemperatureOptimum(t *testing.T) {
	engine := Engine{Variant: VariantAdditive}
	params := neutralParams()

	atOptimum := engine.Predict(20000, params)
	for _, temp := range []float64{20, 45, 69.9, 70.1, 95, 120, -10, 200} {
		params.Temperature = temp
		assert.LessOrEqual(t, engine.Predict(20000, params), atOptimum,
			"temperature %v must not beat the optimum", temp)
	}
}

func TestMultiplicativeNeutralPointIsBaseline(t *testing.T) {
	engine := Engine{Variant: VariantMultiplicative}

	got := engine.Predict(20000, neutralParams())
	assert.Equal(t, 20000.0, got)
}

func TestMultiplicativeTempFactorAtOptimum(t *testing.T) {
	assert.InDelta(t, 1.0, tempFactor(70), 1e-9)
	assert.Less(t, tempFactor(30), 1.0)
	assert.Less(t, tempFactor(110), 1.0)
}

func TestMultiplicativeHolidayRatio(t *testing.T) {
	engine := Engine{Variant: VariantMultiplicative}
	params := neutralParams()
	params.Temperature = 55
	params.FuelPrice = 4.1

	off := engine.Predict(20000, params)
	params.Holiday = true
	on := engine.Predict(20000, params)

	assert.InDelta(t, HolidayFactor, on/off, 1e-9)
}

func TestMultiplicativeScalesWithBaseline(t *testing.T) {
	engine := Engine{Variant: VariantMultiplicative}
	params := neutralParams()
	params.Temperature = 85
	params.Unemployment = 9.5

	one := engine.Predict(10000, params)
	two := engine.Predict(20000, params)

	assert.InDelta(t, 2.0, two/one, 1e-9)
}

func TestPredictAcceptsOutOfRangeInputs(t *testing.T) {
	params := models.ParameterVector{
		Temperature:  -40,
		FuelPrice:    9.75,
		CPI:          500,
		Unemployment: 42,
	}

	for _, variant := range []Variant{VariantAdditive, VariantMultiplicative} {
		engine := Engine{Variant: variant}
		got := engine.Predict(20000, params)
		assert.False(t, got != got, "variant %s produced NaN", variant)
	}
}

// Central finite differences at two step sizes must agree, confirming
// the model is smooth in each numeric dimension.
func TestPredictIsSmoothPerDimension(t *testing.T) {
	for _, variant := range []Variant{VariantAdditive, VariantMultiplicative} {
		engine := Engine{Variant: variant}
		for _, dim := range Dimensions() {
			base := neutralParams()
			x := 0.0
			switch dim {
			case DimTemperature:
				x = base.Temperature
			case DimFuelPrice:
				x = base.FuelPrice
			case DimCPI:
				x = base.CPI
			case DimUnemployment:
				x = base.Unemployment
			}

			diff := func(h float64) float64 {
				hi := engine.Predict(20000, withValue(base, dim, x+h))
				lo := engine.Predict(20000, withValue(base, dim, x-h))
				return (hi - lo) / (2 * h)
			}

			coarse := diff(1e-2)
			fine := diff(1e-3)
			assert.InDelta(t, coarse, fine, 1.0,
				"variant %s dimension %s finite differences diverge", variant, dim)
		}
	}
}
