package grid

import (
	"errors"
	"fmt"
	"math"

	"energy-econ/internal/model"
)

// ErrEmptyAxis is returned when either price axis has no values.
var ErrEmptyAxis = errors.New("price axis is empty")

// Grid is the cost matrix over the cross product of two price axes.
// Rows follow H2Prices, columns follow CO2Prices.
type Grid struct {
	Unit      model.Unit
	CO2Prices []float64
	H2Prices  []float64
	Costs     [][]float64
}

// Evaluate applies the methane cost formula to every (h2, co2) pair and
// converts the result into unit. The unit is checked before any work is done.
func Evaluate(co2Prices, h2Prices []float64, unit string, coeffs model.MethaneCoefficients) (*Grid, error) {
	u, err := model.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	if len(co2Prices) == 0 {
		return nil, fmt.Errorf("co2 prices: %w", ErrEmptyAxis)
	}
	if len(h2Prices) == 0 {
		return nil, fmt.Errorf("h2 prices: %w", ErrEmptyAxis)
	}

	g := &Grid{
		Unit:      u,
		CO2Prices: append([]float64(nil), co2Prices...),
		H2Prices:  append([]float64(nil), h2Prices...),
		Costs:     make([][]float64, len(h2Prices)),
	}
	for r, h2 := range g.H2Prices {
		row := make([]float64, len(g.CO2Prices))
		for c, co2 := range g.CO2Prices {
			row[c] = u.Convert(coeffs.CostPerKg(co2, h2), coeffs)
		}
		g.Costs[r] = row
	}
	return g, nil
}

func (g *Grid) Rows() int { return len(g.H2Prices) }
func (g *Grid) Cols() int { return len(g.CO2Prices) }

func (g *Grid) At(r, c int) float64 { return g.Costs[r][c] }

// Min returns the smallest cost in the grid. NaN cells are skipped.
func (g *Grid) Min() float64 {
	m := math.Inf(1)
	for _, row := range g.Costs {
		for _, v := range row {
			if v < m {
				m = v
			}
		}
	}
	return m
}

// Max returns the largest cost in the grid. NaN cells are skipped.
func (g *Grid) Max() float64 {
	m := math.Inf(-1)
	for _, row := range g.Costs {
		for _, v := range row {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// Finite reports whether every cell is a finite number. Large prices can
// overflow the cost to ±Inf.
func (g *Grid) Finite() bool {
	for _, row := range g.Costs {
		for _, v := range row {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}

// Range returns start, start+step, ... up to but excluding stop.
// A non-positive step or an empty interval yields an empty axis.
func Range(start, stop, step float64) []float64 {
	if step <= 0 || math.IsNaN(step) || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start+float64(i)*step)
	}
	return out
}
