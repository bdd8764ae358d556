package grid

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"energy-econ/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCO2 = []float64{0.05, 0.078, 0.1, 0.2}
	testH2  = []float64{0.89, 2, 4}
)

func TestEvaluateShapeAndValues(t *testing.T) {
	g, err := Evaluate(testCO2, testH2, "kg", model.DefaultMethaneCoefficients())
	require.NoError(t, err)

	assert.Equal(t, model.UnitKg, g.Unit)
	assert.Equal(t, len(testH2), g.Rows())
	assert.Equal(t, len(testCO2), g.Cols())
	for r, h2 := range testH2 {
		for c, co2 := range testCO2 {
			assert.Equal(t, model.MethaneCostPerKg(co2, h2), g.At(r, c))
		}
	}
	assert.Equal(t, g.At(0, 0), g.Min())
	assert.Equal(t, g.At(2, 3), g.Max())
}

func TestEvaluateKcfIsKgTimesConversion(t *testing.T) {
	coeffs := model.DefaultMethaneCoefficients()
	kg, err := Evaluate(testCO2, testH2, "kg", coeffs)
	require.NoError(t, err)
	kcf, err := Evaluate(testCO2, testH2, "kcf", coeffs)
	require.NoError(t, err)

	for r := 0; r < kg.Rows(); r++ {
		for c := 0; c < kg.Cols(); c++ {
			assert.InDelta(t, kg.At(r, c)*19.17, kcf.At(r, c), 1e-12)
		}
	}
}

func TestEvaluateRejectsUnknownUnit(t *testing.T) {
	g, err := Evaluate(testCO2, testH2, "lbs", model.DefaultMethaneCoefficients())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidUnit)
	assert.Nil(t, g)
}

func TestEvaluateRejectsEmptyAxis(t *testing.T) {
	_, err := Evaluate(nil, testH2, "kg", model.DefaultMethaneCoefficients())
	assert.ErrorIs(t, err, ErrEmptyAxis)
	_, err = Evaluate(testCO2, []float64{}, "kg", model.DefaultMethaneCoefficients())
	assert.ErrorIs(t, err, ErrEmptyAxis)
}

func TestEvaluateCopiesAxes(t *testing.T) {
	co2 := []float64{0.1, 0.2}
	g, err := Evaluate(co2, []float64{1}, "kg", model.DefaultMethaneCoefficients())
	require.NoError(t, err)
	co2[0] = 99
	assert.Equal(t, 0.1, g.CO2Prices[0])
}

func TestEvaluateIdempotent(t *testing.T) {
	a, err := Evaluate(testCO2, testH2, "kcf", model.DefaultMethaneCoefficients())
	require.NoError(t, err)
	b, err := Evaluate(testCO2, testH2, "kcf", model.DefaultMethaneCoefficients())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRange(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2}, Range(0, 3, 1))
	assert.Len(t, Range(0.5, 3, 0.5), 5)
	assert.Empty(t, Range(0, 1, 0))
	assert.Empty(t, Range(2, 1, 0.5))
}

func TestWriteCSV(t *testing.T) {
	g, err := Evaluate([]float64{0.1, 0.2}, []float64{1, 2}, "kg", model.DefaultMethaneCoefficients())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "grid.csv")
	require.NoError(t, WriteCSV(path, g))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"h2_price\\co2_price (USD/kg)", "0.100000", "0.200000"}, records[0])
	assert.Equal(t, "1.000000", records[1][0])
	assert.Equal(t, fmtFloat(g.At(1, 1)), records[2][2])
}

func TestFinite(t *testing.T) {
	coeffs := model.DefaultMethaneCoefficients()

	g, err := Evaluate([]float64{0.05, 0.1}, []float64{1, 2}, "kcf", coeffs)
	require.NoError(t, err)
	assert.True(t, g.Finite())

	g, err = Evaluate([]float64{1e308}, []float64{1}, "kg", coeffs)
	require.NoError(t, err)
	assert.False(t, g.Finite())

	g, err = Evaluate([]float64{math.NaN()}, []float64{1}, "kg", coeffs)
	require.NoError(t, err)
	assert.False(t, g.Finite())
}
