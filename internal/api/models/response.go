package models

import (
	"energy-econ/internal/model"
	"energy-econ/internal/thermal"
)

// MethaneCostResponse reports the cost in USD/kg and in the requested unit.
type MethaneCostResponse struct {
	CO2Price  float64 `json:"co2_price"`
	H2Price   float64 `json:"h2_price"`
	CostPerKg float64 `json:"cost_per_kg"`
	Unit      string  `json:"unit"`
	Cost      float64 `json:"cost"`
}

// MethaneGridResponse carries the matrix and where to fetch its heat-map.
type MethaneGridResponse struct {
	ID        string      `json:"id"`
	Unit      string      `json:"unit"`
	CO2Prices []float64   `json:"co2_prices"`
	H2Prices  []float64   `json:"h2_prices"`
	Costs     [][]float64 `json:"costs"` // rows follow h2_prices
	Min       float64     `json:"min"`
	Max       float64     `json:"max"`
	ImageURL  string      `json:"image_url"`
	ImageName string      `json:"image_name"`
}

// GreenhouseResponse echoes the parameters used with the result.
type GreenhouseResponse struct {
	Params model.GreenhouseParams `json:"params"`
	Result model.DegreeHourResult `json:"result"`
	Lines  []string               `json:"lines"`
}

// ThermalResponse summarizes one simulated day.
type ThermalResponse struct {
	HeatingLoadKWh float64              `json:"heating_load_kwh_per_m2"`
	CoolingLoadKWh float64              `json:"cooling_load_kwh_per_m2"`
	HeatingHours   int                  `json:"heating_hours"`
	CoolingHours   int                  `json:"cooling_hours"`
	Costs          thermal.CostSummary  `json:"costs_per_m2"`
	Hourly         []thermal.HourResult `json:"hourly,omitempty"`
}

// SolarProfileResponse is a daily flux profile.
type SolarProfileResponse struct {
	Latitude  float64              `json:"latitude"`
	DayOfYear int                  `json:"day_of_year"`
	Samples   []thermal.FluxSample `json:"samples"`
	PeakFlux  float64              `json:"peak_flux"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
