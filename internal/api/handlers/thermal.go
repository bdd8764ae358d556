package handlers

import (
	"net/http"

	"energy-econ/internal/api/models"
	"energy-econ/internal/config"
	"energy-econ/internal/thermal"

	"github.com/gin-gonic/gin"
)

// ThermalHandler runs day-long thermal simulations.
type ThermalHandler struct {
	defaults config.ThermalConfig
}

func NewThermalHandler(defaults config.ThermalConfig) *ThermalHandler {
	return &ThermalHandler{defaults: defaults}
}

// Simulate handles POST /api/v1/thermal/simulate
func (h *ThermalHandler) Simulate(c *gin.Context) {
	var req models.ThermalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	params := h.defaults.Params
	if req.Params != nil {
		params = thermal.Params{
			UValue:               req.Params.UValue,
			Height:               req.Params.Height,
			InfiltrationRate:     req.Params.InfiltrationRate,
			ThermalMass:          req.Params.ThermalMass,
			GlazingTransmittance: req.Params.GlazingTransmittance,
			Latitude:             req.Params.Latitude,
			Orientation:          req.Params.Orientation,
		}
	}
	if err := params.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	prices := h.defaults.Prices
	if req.Prices != nil {
		prices = thermal.Prices{
			ElectricityPerKWh: req.Prices.ElectricityPerKWh,
			GasPerKWh:         req.Prices.GasPerKWh,
			CoolingCOP:        req.Prices.CoolingCOP,
			HeatingCOP:        req.Prices.HeatingCOP,
		}
	}
	if err := prices.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_PRICES", err.Error())
		return
	}

	temps := h.defaults.Temperatures
	if len(req.Temperatures) > 0 {
		temps = req.Temperatures
	}
	target := h.defaults.TargetTemp
	if req.TargetTemp != nil {
		target = *req.TargetTemp
	}
	day := h.defaults.DayOfYear
	if req.DayOfYear != 0 {
		day = req.DayOfYear
	}
	if day < 1 || day > 366 {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", "day_of_year must be between 1 and 366")
		return
	}

	sim, err := thermal.SimulateDay(params, temps, target, day)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_TEMPERATURES", err.Error())
		return
	}

	resp := models.ThermalResponse{
		HeatingLoadKWh: sim.HeatingLoadKWh,
		CoolingLoadKWh: sim.CoolingLoadKWh,
		HeatingHours:   len(sim.HeatingHours),
		CoolingHours:   len(sim.CoolingHours),
		Costs:          thermal.Costs(sim, prices),
	}
	if req.IncludeHours {
		resp.Hourly = sim.Hourly
	}
	c.JSON(http.StatusOK, resp)
}
