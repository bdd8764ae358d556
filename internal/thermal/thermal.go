// Package thermal simulates the hourly energy balance of a greenhouse:
// conduction through the envelope, air infiltration, solar gain through the
// glazing and the buffering effect of thermal mass.
package thermal

import (
	"errors"
	"fmt"
	"math"
)

const (
	AirDensity      = 1.225 // kg/m^3
	AirSpecificHeat = 1005  // J/(kg K)
	JouleToWh       = 1.0 / 3600

	// Clear-sky direct normal irradiance before attenuation, W/m^2.
	glazingSolarConstant = 1080
)

// Params describes the greenhouse envelope.
// Units:
// - UValue: W/(m^2 K)
// - Height: m
// - InfiltrationRate: air changes per hour
// - ThermalMass: J/(m^2 K)
// - GlazingTransmittance: 0..1
// - Latitude: degrees north
// - Orientation: degrees from south (informational)
type Params struct {
	UValue               float64 `yaml:"u_value" json:"u_value"`
	Height               float64 `yaml:"height" json:"height"`
	InfiltrationRate     float64 `yaml:"infiltration_rate" json:"infiltration_rate"`
	ThermalMass          float64 `yaml:"thermal_mass" json:"thermal_mass"`
	GlazingTransmittance float64 `yaml:"glazing_transmittance" json:"glazing_transmittance"`
	Latitude             float64 `yaml:"latitude" json:"latitude"`
	Orientation          float64 `yaml:"orientation" json:"orientation"`
}

func DefaultParams() Params {
	return Params{
		UValue:               4.0,
		Height:               4.0,
		InfiltrationRate:     0.5,
		ThermalMass:          100000,
		GlazingTransmittance: 0.8,
		Latitude:             40,
		Orientation:          0,
	}
}

func (p Params) Validate() error {
	if p.UValue < 0 {
		return errors.New("UValue must be >= 0")
	}
	if p.Height <= 0 {
		return errors.New("Height must be > 0")
	}
	if p.InfiltrationRate < 0 {
		return errors.New("InfiltrationRate must be >= 0")
	}
	if p.GlazingTransmittance < 0 || p.GlazingTransmittance > 1 {
		return errors.New("GlazingTransmittance must be in [0, 1]")
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return errors.New("Latitude must be in [-90, 90]")
	}
	return nil
}

// WinterDay is a representative January outdoor temperature profile, °C by hour.
var WinterDay = [24]float64{
	-2, -3, -3, -4, -4, -4,
	-3, -2, 0, 2, 4, 6,
	7, 8, 8, 7, 5, 3,
	2, 1, 0, -1, -1, -2,
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// SolarRadiation is the direct radiation reaching the floor inside the
// greenhouse in W/m^2, after atmospheric attenuation and glazing losses.
// It is 0 while the sun is below the horizon.
func SolarRadiation(hour float64, dayOfYear int, latitude, glazingTransmittance float64) float64 {
	declination := 23.45 * math.Sin(2*math.Pi*float64(dayOfYear-81)/365)
	hourAngle := 15 * (hour - 12)

	lat := radians(latitude)
	decl := radians(declination)
	ha := radians(hourAngle)

	sinAltitude := math.Sin(lat)*math.Sin(decl) + math.Cos(lat)*math.Cos(decl)*math.Cos(ha)
	if sinAltitude <= 0 {
		return 0
	}
	if sinAltitude > 1 {
		sinAltitude = 1
	}

	airMass := 1 / sinAltitude
	dirNormal := glazingSolarConstant * math.Exp(-0.1*airMass)

	incidentAngle := math.Acos(sinAltitude)
	transmittance := glazingTransmittance * (1 - 0.5*incidentAngle)

	return dirNormal * sinAltitude * transmittance
}

// Conduction is heat flow through the envelope, W/m^2.
func Conduction(uValue, deltaT float64) float64 {
	return uValue * deltaT
}

// Infiltration is heat carried by exchanged air, Wh/m^2 per hour.
func Infiltration(height, infiltrationRate, deltaT float64) float64 {
	return height * infiltrationRate * AirDensity * AirSpecificHeat * deltaT * JouleToWh
}

// ThermalMassEffect is the heat released (positive) or absorbed by thermal
// mass over the daily cycle, Wh/m^2.
func ThermalMassEffect(thermalMass, deltaT, hour float64) float64 {
	return thermalMass * deltaT / 24 * math.Sin(2*math.Pi*hour/24) * JouleToWh
}

// LoadType says which plant must run to hold the target temperature.
type LoadType string

const (
	LoadHeating LoadType = "heating"
	LoadCooling LoadType = "cooling"
)

// HourResult is the energy balance for one hour, W/m^2.
type HourResult struct {
	Hour         int      `json:"hour"`
	Conduction   float64  `json:"conduction"`
	Infiltration float64  `json:"infiltration"`
	Solar        float64  `json:"solar"`
	ThermalMass  float64  `json:"thermal_mass"`
	Total        float64  `json:"total"`
	Type         LoadType `json:"type"`
}

// HourlyEnergy balances losses against gains for one hour. A positive total
// is a heating load.
func HourlyEnergy(p Params, outdoorTemp float64, hour int, dayOfYear int, targetTemp float64) HourResult {
	deltaT := targetTemp - outdoorTemp

	res := HourResult{
		Hour:         hour,
		Conduction:   Conduction(p.UValue, deltaT),
		Infiltration: Infiltration(p.Height, p.InfiltrationRate, deltaT),
		Solar:        SolarRadiation(float64(hour), dayOfYear, p.Latitude, p.GlazingTransmittance),
		ThermalMass:  ThermalMassEffect(p.ThermalMass, deltaT, float64(hour)),
	}
	res.Total = res.Conduction + res.Infiltration - res.Solar - res.ThermalMass
	if res.Total > 0 {
		res.Type = LoadHeating
	} else {
		res.Type = LoadCooling
	}
	return res
}

// DaySimulation aggregates 24 hourly balances into daily loads, kWh/m^2.
type DaySimulation struct {
	Hourly       []HourResult `json:"hourly"`
	HeatingHours []HourResult `json:"heating_hours"`
	CoolingHours []HourResult `json:"cooling_hours"`

	HeatingLoadKWh float64 `json:"heating_load_kwh"`
	CoolingLoadKWh float64 `json:"cooling_load_kwh"`
}

// SimulateDay runs HourlyEnergy for each hour of temps.
func SimulateDay(p Params, temps []float64, targetTemp float64, dayOfYear int) (*DaySimulation, error) {
	if len(temps) != 24 {
		return nil, fmt.Errorf("expected 24 hourly temperatures, got %d", len(temps))
	}

	sim := &DaySimulation{Hourly: make([]HourResult, 0, 24)}
	var heating, cooling float64
	for hour, t := range temps {
		r := HourlyEnergy(p, t, hour, dayOfYear, targetTemp)
		sim.Hourly = append(sim.Hourly, r)
		if r.Type == LoadHeating {
			sim.HeatingHours = append(sim.HeatingHours, r)
			heating += r.Total
		} else {
			sim.CoolingHours = append(sim.CoolingHours, r)
			cooling += r.Total
		}
	}
	sim.HeatingLoadKWh = math.Abs(heating / 1000)
	sim.CoolingLoadKWh = math.Abs(cooling / 1000)
	return sim, nil
}

// Prices are energy prices in $/kWh and plant efficiencies.
type Prices struct {
	ElectricityPerKWh float64 `yaml:"electricity_per_kwh" json:"electricity_per_kwh"`
	GasPerKWh         float64 `yaml:"gas_per_kwh" json:"gas_per_kwh"`
	CoolingCOP        float64 `yaml:"cooling_cop" json:"cooling_cop"`
	HeatingCOP        float64 `yaml:"heating_cop" json:"heating_cop"`
}

func DefaultPrices() Prices {
	return Prices{
		ElectricityPerKWh: 0.12,
		GasPerKWh:         0.03,
		CoolingCOP:        8.0,
		HeatingCOP:        0.85,
	}
}

func (p Prices) Validate() error {
	if p.CoolingCOP <= 0 || p.HeatingCOP <= 0 {
		return errors.New("CoolingCOP and HeatingCOP must be > 0")
	}
	if p.ElectricityPerKWh < 0 || p.GasPerKWh < 0 {
		return errors.New("energy prices must be >= 0")
	}
	return nil
}

// CostSummary is $/m^2, daily and projected over a year of identical days.
type CostSummary struct {
	DailyCooling  float64 `json:"daily_cooling"`
	DailyHeating  float64 `json:"daily_heating"`
	DailyTotal    float64 `json:"daily_total"`
	AnnualCooling float64 `json:"annual_cooling"`
	AnnualHeating float64 `json:"annual_heating"`
	AnnualTotal   float64 `json:"annual_total"`
}

const daysPerYear = 365

func Costs(sim *DaySimulation, prices Prices) CostSummary {
	var s CostSummary
	if sim == nil {
		return s
	}
	s.DailyCooling = sim.CoolingLoadKWh * prices.ElectricityPerKWh / prices.CoolingCOP
	s.DailyHeating = sim.HeatingLoadKWh * prices.GasPerKWh / prices.HeatingCOP
	s.DailyTotal = s.DailyCooling + s.DailyHeating
	s.AnnualCooling = s.DailyCooling * daysPerYear
	s.AnnualHeating = s.DailyHeating * daysPerYear
	s.AnnualTotal = s.AnnualCooling + s.AnnualHeating
	return s
}
