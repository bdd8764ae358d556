package handlers

import (
	"net/http"

	"energy-econ/internal/api/models"
	"energy-econ/internal/config"
	"energy-econ/internal/model"

	"github.com/gin-gonic/gin"
)

// GreenhouseHandler answers degree-hour cost questions.
type GreenhouseHandler struct {
	params model.GreenhouseParams
}

func NewGreenhouseHandler(params model.GreenhouseParams) *GreenhouseHandler {
	return &GreenhouseHandler{params: params}
}

// DegreeHour handles GET /api/v1/greenhouse/degree-hour
func (h *GreenhouseHandler) DegreeHour(c *gin.Context) {
	var q models.GreenhouseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	p := config.MergeGreenhouse(h.params, config.GreenhouseOverride{
		FloorAreaSqFt:          q.FloorAreaSqFt,
		CeilingHeightFt:        q.CeilingHeightFt,
		AirChangesPerHour:      q.AirChangesPerHour,
		AirHeatCapacity:        q.AirHeatCapacity,
		InfiltrationFactor:     q.InfiltrationFactor,
		GreenhouseEffectFactor: q.GreenhouseEffectFactor,
		HeatingEfficiency:      q.HeatingEfficiency,
		CoolingCOP:             q.CoolingCOP,
		HeatingRatePerKWh:      q.HeatingRatePerKWh,
		CoolingRatePerKWh:      q.CoolingRatePerKWh,
	})
	if err := p.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	res := model.DegreeHourCost(p)
	c.JSON(http.StatusOK, models.GreenhouseResponse{
		Params: p,
		Result: res,
		Lines:  res.Lines(),
	})
}
