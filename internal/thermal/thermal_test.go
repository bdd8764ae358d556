package thermal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolarRadiationNightIsZero(t *testing.T) {
	assert.Equal(t, 0.0, SolarRadiation(0, 15, 40, 0.8))
	assert.Equal(t, 0.0, SolarRadiation(23, 172, 40, 0.8))
}

func TestSolarRadiationNoonPeaks(t *testing.T) {
	noon := SolarRadiation(12, 172, 40, 0.8)
	morning := SolarRadiation(8, 172, 40, 0.8)
	assert.Greater(t, noon, morning)
	assert.Greater(t, morning, 0.0)
	assert.Less(t, noon, 1080.0)
	assert.Greater(t, SolarRadiation(12, 172, 40, 0.8), SolarRadiation(12, 15, 40, 0.8))
}

func TestEnvelopeTerms(t *testing.T) {
	assert.Equal(t, 100.0, Conduction(4, 25))
	// 4 m * 0.5 ACH * 1.225 * 1005 * 25 / 3600
	assert.InDelta(t, 17.099, Infiltration(4, 0.5, 25), 1e-3)
	assert.InDelta(t, 0.0, ThermalMassEffect(100000, 25, 0), 1e-12)
	assert.Greater(t, ThermalMassEffect(100000, 25, 6), 0.0)
	assert.Less(t, ThermalMassEffect(100000, 25, 18), 0.0)
}

func TestHourlyEnergyClassification(t *testing.T) {
	p := DefaultParams()

	night := HourlyEnergy(p, -4, 3, 15, 23)
	assert.Equal(t, LoadHeating, night.Type)
	assert.Equal(t, 0.0, night.Solar)
	assert.InDelta(t, night.Conduction+night.Infiltration-night.Solar-night.ThermalMass, night.Total, 1e-12)

	// Hot summer noon: gains exceed losses.
	noon := HourlyEnergy(p, 35, 12, 172, 23)
	assert.Equal(t, LoadCooling, noon.Type)
	assert.LessOrEqual(t, noon.Total, 0.0)
}

func TestSimulateDayWinter(t *testing.T) {
	sim, err := SimulateDay(DefaultParams(), WinterDay[:], 23, 15)
	require.NoError(t, err)

	require.Len(t, sim.Hourly, 24)
	assert.Equal(t, 24, len(sim.HeatingHours)+len(sim.CoolingHours))
	assert.Greater(t, sim.HeatingLoadKWh, 0.0)
	assert.GreaterOrEqual(t, sim.CoolingLoadKWh, 0.0)

	var heating float64
	for _, h := range sim.HeatingHours {
		heating += h.Total
	}
	assert.InDelta(t, heating/1000, sim.HeatingLoadKWh, 1e-12)
}

func TestSimulateDayRejectsShortProfile(t *testing.T) {
	_, err := SimulateDay(DefaultParams(), []float64{1, 2, 3}, 23, 15)
	assert.Error(t, err)
}

func TestCosts(t *testing.T) {
	sim := &DaySimulation{HeatingLoadKWh: 1.7, CoolingLoadKWh: 0.4}
	c := Costs(sim, DefaultPrices())

	assert.InDelta(t, 0.4*0.12/8, c.DailyCooling, 1e-12)
	assert.InDelta(t, 1.7*0.03/0.85, c.DailyHeating, 1e-12)
	assert.InDelta(t, c.DailyCooling+c.DailyHeating, c.DailyTotal, 1e-12)
	assert.InDelta(t, c.DailyTotal*365, c.AnnualTotal, 1e-9)

	assert.Equal(t, CostSummary{}, Costs(nil, DefaultPrices()))
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
	p := DefaultParams()
	p.GlazingTransmittance = 1.2
	assert.Error(t, p.Validate())
	p = DefaultParams()
	p.Height = 0
	assert.Error(t, p.Validate())

	require.NoError(t, DefaultPrices().Validate())
	assert.Error(t, Prices{CoolingCOP: 0, HeatingCOP: 1}.Validate())
}
