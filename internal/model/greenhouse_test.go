package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreeHourCostDefaults(t *testing.T) {
	r := DegreeHourCost(DefaultGreenhouseParams())

	assert.InDelta(t, 8640.0, r.LoadBTU, 1e-9)
	assert.InDelta(t, 2.98, r.HeatingKWh, 0.005)
	assert.InDelta(t, 1.32, r.CoolingKWh, 0.005)
	assert.InDelta(t, 0.119, r.HeatingCost, 0.0005)
	assert.InDelta(t, 0.158, r.CoolingCost, 0.0005)

	assert.InDelta(t, r.HeatingBTU/10000, r.HeatingBTUPerSqFt, 1e-12)
	assert.InDelta(t, 3.2066, r.HeatingWhPerSqM, 1e-3)
}

func TestDegreeHourLines(t *testing.T) {
	lines := DegreeHourCost(DefaultGreenhouseParams()).Lines()
	require.Len(t, lines, 6)
	assert.Equal(t, "Heating energy per degree hour: 2.98 kWh", lines[1])
	assert.Equal(t, "Cooling energy per degree hour: 1.32 kWh", lines[3])
	assert.Equal(t, "Heating cost per degree hour: $0.119", lines[4])
	assert.Equal(t, "Cooling cost per degree hour: $0.158", lines[5])
}

func TestDegreeHourCostScalesWithArea(t *testing.T) {
	p := DefaultGreenhouseParams()
	base := DegreeHourCost(p)
	p.FloorAreaSqFt *= 2
	doubled := DegreeHourCost(p)

	assert.InDelta(t, 2*base.HeatingKWh, doubled.HeatingKWh, 1e-12)
	assert.InDelta(t, 2*base.CoolingCost, doubled.CoolingCost, 1e-12)
	// Per-area figures do not depend on floor area.
	assert.InDelta(t, base.HeatingBTUPerSqFt, doubled.HeatingBTUPerSqFt, 1e-12)
}

func TestDegreeHourCostIdempotent(t *testing.T) {
	a := DegreeHourCost(DefaultGreenhouseParams())
	b := DegreeHourCost(DefaultGreenhouseParams())
	assert.Equal(t, math.Float64bits(a.HeatingCost), math.Float64bits(b.HeatingCost))
	assert.Equal(t, a, b)
}

func TestGreenhouseParamsValidate(t *testing.T) {
	require.NoError(t, DefaultGreenhouseParams().Validate())

	cases := map[string]func(*GreenhouseParams){
		"area":       func(p *GreenhouseParams) { p.FloorAreaSqFt = 0 },
		"height":     func(p *GreenhouseParams) { p.CeilingHeightFt = -1 },
		"efficiency": func(p *GreenhouseParams) { p.HeatingEfficiency = 1.5 },
		"cop":        func(p *GreenhouseParams) { p.CoolingCOP = 0 },
		"rate":       func(p *GreenhouseParams) { p.CoolingRatePerKWh = -0.1 },
		"factor":     func(p *GreenhouseParams) { p.InfiltrationFactor = -2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultGreenhouseParams()
			mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}
