package model

import (
	"errors"
	"fmt"
)

const (
	BTUPerKWh       = 3412.14
	SqMetersPerSqFt = 0.09290304
)

// GreenhouseParams defines the building and utility inputs for the
// degree-hour estimate.
// Units:
// - FloorAreaSqFt: ft^2
// - CeilingHeightFt: ft
// - AirChangesPerHour: volume exchanges per hour
// - AirHeatCapacity: BTU/(ft^3 °F)
// - InfiltrationFactor: multiplier on the air exchange load (leakage through glazing)
// - GreenhouseEffectFactor: multiplier on the cooling load (trapped solar gain)
// - HeatingEfficiency: 0..1 furnace efficiency
// - CoolingCOP: coefficient of performance of the cooling plant
// - HeatingRatePerKWh / CoolingRatePerKWh: $/kWh of purchased energy
type GreenhouseParams struct {
	FloorAreaSqFt          float64 `yaml:"floor_area_sqft" json:"floor_area_sqft"`
	CeilingHeightFt        float64 `yaml:"ceiling_height_ft" json:"ceiling_height_ft"`
	AirChangesPerHour      float64 `yaml:"air_changes_per_hour" json:"air_changes_per_hour"`
	AirHeatCapacity        float64 `yaml:"air_heat_capacity" json:"air_heat_capacity"`
	InfiltrationFactor     float64 `yaml:"infiltration_factor" json:"infiltration_factor"`
	GreenhouseEffectFactor float64 `yaml:"greenhouse_effect_factor" json:"greenhouse_effect_factor"`
	HeatingEfficiency      float64 `yaml:"heating_efficiency" json:"heating_efficiency"`
	CoolingCOP             float64 `yaml:"cooling_cop" json:"cooling_cop"`
	HeatingRatePerKWh      float64 `yaml:"heating_rate_per_kwh" json:"heating_rate_per_kwh"`
	CoolingRatePerKWh      float64 `yaml:"cooling_rate_per_kwh" json:"cooling_rate_per_kwh"`
}

func DefaultGreenhouseParams() GreenhouseParams {
	return GreenhouseParams{
		FloorAreaSqFt:          10000,
		CeilingHeightFt:        12,
		AirChangesPerHour:      2,
		AirHeatCapacity:        0.018,
		InfiltrationFactor:     2.0,
		GreenhouseEffectFactor: 1.3,
		HeatingEfficiency:      0.85,
		CoolingCOP:             2.5,
		HeatingRatePerKWh:      0.04,
		CoolingRatePerKWh:      0.12,
	}
}

func (p GreenhouseParams) Validate() error {
	if p.FloorAreaSqFt <= 0 {
		return errors.New("FloorAreaSqFt must be > 0")
	}
	if p.CeilingHeightFt <= 0 {
		return errors.New("CeilingHeightFt must be > 0")
	}
	if p.AirChangesPerHour < 0 || p.AirHeatCapacity < 0 {
		return errors.New("AirChangesPerHour and AirHeatCapacity must be >= 0")
	}
	if p.InfiltrationFactor < 0 || p.GreenhouseEffectFactor < 0 {
		return errors.New("InfiltrationFactor and GreenhouseEffectFactor must be >= 0")
	}
	if p.HeatingEfficiency <= 0 || p.HeatingEfficiency > 1 {
		return errors.New("HeatingEfficiency must be in (0, 1]")
	}
	if p.CoolingCOP <= 0 {
		return errors.New("CoolingCOP must be > 0")
	}
	if p.HeatingRatePerKWh < 0 || p.CoolingRatePerKWh < 0 {
		return errors.New("utility rates must be >= 0")
	}
	return nil
}

// VolumeCuFt is the conditioned air volume.
func (p GreenhouseParams) VolumeCuFt() float64 {
	return p.FloorAreaSqFt * p.CeilingHeightFt
}

// FloorAreaSqM converts the floor area to square meters.
func (p GreenhouseParams) FloorAreaSqM() float64 {
	return p.FloorAreaSqFt * SqMetersPerSqFt
}

// DegreeHourResult is the energy and cost to hold the greenhouse one °F away
// from outside air for one hour.
type DegreeHourResult struct {
	LoadBTU float64 `json:"load_btu"`

	HeatingBTU float64 `json:"heating_btu"`
	HeatingKWh float64 `json:"heating_kwh"`
	CoolingBTU float64 `json:"cooling_btu"`
	CoolingKWh float64 `json:"cooling_kwh"`

	HeatingBTUPerSqFt float64 `json:"heating_btu_per_sqft"`
	HeatingWhPerSqM   float64 `json:"heating_wh_per_sqm"`
	CoolingBTUPerSqFt float64 `json:"cooling_btu_per_sqft"`
	CoolingWhPerSqM   float64 `json:"cooling_wh_per_sqm"`

	HeatingCost float64 `json:"heating_cost"`
	CoolingCost float64 `json:"cooling_cost"`
}

// DegreeHourCost runs the fixed conversion chain. It never fails; use
// Validate on params that come from user input.
func DegreeHourCost(p GreenhouseParams) DegreeHourResult {
	load := p.AirHeatCapacity * p.VolumeCuFt() * p.AirChangesPerHour * p.InfiltrationFactor

	heatingBTU := load / p.HeatingEfficiency
	coolingBTU := load * p.GreenhouseEffectFactor / p.CoolingCOP

	heatingKWh := heatingBTU / BTUPerKWh
	coolingKWh := coolingBTU / BTUPerKWh

	areaSqM := p.FloorAreaSqM()
	return DegreeHourResult{
		LoadBTU: load,

		HeatingBTU: heatingBTU,
		HeatingKWh: heatingKWh,
		CoolingBTU: coolingBTU,
		CoolingKWh: coolingKWh,

		HeatingBTUPerSqFt: heatingBTU / p.FloorAreaSqFt,
		HeatingWhPerSqM:   heatingKWh * 1000 / areaSqM,
		CoolingBTUPerSqFt: coolingBTU / p.FloorAreaSqFt,
		CoolingWhPerSqM:   coolingKWh * 1000 / areaSqM,

		HeatingCost: heatingKWh * p.HeatingRatePerKWh,
		CoolingCost: coolingKWh * p.CoolingRatePerKWh,
	}
}

// Lines formats the six console lines of the degree-hour report.
func (r DegreeHourResult) Lines() []string {
	return []string{
		fmt.Sprintf("Heating energy per degree hour: %.2f BTU", r.HeatingBTU),
		fmt.Sprintf("Heating energy per degree hour: %.2f kWh", r.HeatingKWh),
		fmt.Sprintf("Cooling energy per degree hour: %.2f BTU", r.CoolingBTU),
		fmt.Sprintf("Cooling energy per degree hour: %.2f kWh", r.CoolingKWh),
		fmt.Sprintf("Heating cost per degree hour: $%.3f", r.HeatingCost),
		fmt.Sprintf("Cooling cost per degree hour: $%.3f", r.CoolingCost),
	}
}
