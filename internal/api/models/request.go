package models

// MethaneCostRequest is the body of POST /api/v1/methane/cost.
type MethaneCostRequest struct {
	CO2Price *float64 `json:"co2_price" binding:"required"` // USD/kg
	H2Price  *float64 `json:"h2_price" binding:"required"`  // USD/kg
	Unit     string   `json:"unit,omitempty"`               // default: "kg"
}

// MethaneGridRequest is the body of POST /api/v1/methane/grid.
// Each axis holds at most 50 prices.
type MethaneGridRequest struct {
	CO2Prices []float64 `json:"co2_prices" binding:"required,max=50"`
	H2Prices  []float64 `json:"h2_prices" binding:"required,max=50"`
	Unit      string    `json:"unit" binding:"required"` // "kg" or "kcf"
	Title     string    `json:"title,omitempty"`
	Palette   string    `json:"palette,omitempty"` // ColorBrewer sequential name, default YlGnBu
}

// GreenhouseQuery holds optional overrides for GET /api/v1/greenhouse/degree-hour.
// Omitted parameters keep the configured values; an explicit 0 is applied.
type GreenhouseQuery struct {
	FloorAreaSqFt          *float64 `form:"floor_area_sqft"`
	CeilingHeightFt        *float64 `form:"ceiling_height_ft"`
	AirChangesPerHour      *float64 `form:"air_changes_per_hour"`
	AirHeatCapacity        *float64 `form:"air_heat_capacity"`
	InfiltrationFactor     *float64 `form:"infiltration_factor"`
	GreenhouseEffectFactor *float64 `form:"greenhouse_effect_factor"`
	HeatingEfficiency      *float64 `form:"heating_efficiency"`
	CoolingCOP             *float64 `form:"cooling_cop"`
	HeatingRatePerKWh      *float64 `form:"heating_rate_per_kwh"`
	CoolingRatePerKWh      *float64 `form:"cooling_rate_per_kwh"`
}

// ThermalRequest is the body of POST /api/v1/thermal/simulate. Omitted
// sections fall back to the configured defaults.
type ThermalRequest struct {
	Params       *ThermalParams `json:"params,omitempty"`
	Prices       *ThermalPrices `json:"prices,omitempty"`
	Temperatures []float64      `json:"temperatures,omitempty"` // 24 hourly values, °C
	TargetTemp   *float64       `json:"target_temp,omitempty"`
	DayOfYear    int            `json:"day_of_year,omitempty"`
	IncludeHours bool           `json:"include_hours,omitempty"`
}

type ThermalParams struct {
	UValue               float64 `json:"u_value"`
	Height               float64 `json:"height"`
	InfiltrationRate     float64 `json:"infiltration_rate"`
	ThermalMass          float64 `json:"thermal_mass"`
	GlazingTransmittance float64 `json:"glazing_transmittance"`
	Latitude             float64 `json:"latitude"`
	Orientation          float64 `json:"orientation"`
}

type ThermalPrices struct {
	ElectricityPerKWh float64 `json:"electricity_per_kwh"`
	GasPerKWh         float64 `json:"gas_per_kwh"`
	CoolingCOP        float64 `json:"cooling_cop"`
	HeatingCOP        float64 `json:"heating_cop"`
}

// SolarQuery is the query of GET /api/v1/solar/profile.
type SolarQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required"`
	DayOfYear int      `form:"day" binding:"required,min=1,max=366"`
}
