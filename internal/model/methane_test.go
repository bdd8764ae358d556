package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethaneCostPerKgSample(t *testing.T) {
	got := MethaneCostPerKg(0.078, 0.89)
	want := (0.078*2.74 + 0.89*0.251) * 1.195
	assert.Equal(t, want, got)
	assert.InDelta(t, 0.5223, got, 1e-4)
}

func TestMethaneCostDefaultCoefficientsMatchShortcut(t *testing.T) {
	c := DefaultMethaneCoefficients()
	for _, tc := range []struct{ co2, h2 float64 }{
		{0, 0},
		{0.078, 0.89},
		{0.2, 5.5},
		{-1, 2},
	} {
		assert.Equal(t, MethaneCostPerKg(tc.co2, tc.h2), c.CostPerKg(tc.co2, tc.h2))
	}
}

func TestMethaneCostMonotonicAndLinear(t *testing.T) {
	prices := []float64{0, 0.05, 0.1, 0.5, 1, 2.5, 10}
	for _, h2 := range prices {
		prev := math.Inf(-1)
		for _, co2 := range prices {
			v := MethaneCostPerKg(co2, h2)
			assert.GreaterOrEqual(t, v, prev, "co2=%v h2=%v", co2, h2)
			prev = v
		}
	}
	for _, co2 := range prices {
		prev := math.Inf(-1)
		for _, h2 := range prices {
			v := MethaneCostPerKg(co2, h2)
			assert.GreaterOrEqual(t, v, prev, "co2=%v h2=%v", co2, h2)
			prev = v
		}
	}

	// f(a+b) = f(a) + f(b) - f(0) for an affine map with f(0) = 0.
	assert.Equal(t, 0.0, MethaneCostPerKg(0, 0))
	assert.InDelta(t, MethaneCostPerKg(0.3, 0)+MethaneCostPerKg(0, 1.7), MethaneCostPerKg(0.3, 1.7), 1e-12)
	assert.InDelta(t, 2*MethaneCostPerKg(0.1, 0.4), MethaneCostPerKg(0.2, 0.8), 1e-12)
}

func TestMethaneCostNegativeInputsPropagate(t *testing.T) {
	assert.Less(t, MethaneCostPerKg(-1, -1), 0.0)
	assert.True(t, math.IsNaN(MethaneCostPerKg(math.NaN(), 1)))
}

func TestMethaneCostIdempotent(t *testing.T) {
	a := MethaneCostPerKg(0.1234, 3.21)
	b := MethaneCostPerKg(0.1234, 3.21)
	assert.Equal(t, math.Float64bits(a), math.Float64bits(b))
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("kg")
	require.NoError(t, err)
	assert.Equal(t, UnitKg, u)

	u, err = ParseUnit("kcf")
	require.NoError(t, err)
	assert.Equal(t, UnitKcf, u)

	for _, bad := range []string{"lbs", "", "KG", " kg"} {
		_, err := ParseUnit(bad)
		require.Error(t, err, bad)
		assert.ErrorIs(t, err, ErrInvalidUnit)
	}
}

func TestUnitConvert(t *testing.T) {
	c := DefaultMethaneCoefficients()
	assert.Equal(t, 0.5, UnitKg.Convert(0.5, c))
	assert.InDelta(t, 0.5*19.17, UnitKcf.Convert(0.5, c), 1e-12)
	assert.Equal(t, "USD/kcf", UnitKcf.Label())
	assert.Equal(t, []Unit{UnitKg, UnitKcf}, Units())
}
