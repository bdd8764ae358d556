package handlers

import (
	"net/http"

	"energy-econ/internal/api/models"
	"energy-econ/internal/thermal"

	"github.com/gin-gonic/gin"
)

// SolarProfile handles GET /api/v1/solar/profile
func SolarProfile(c *gin.Context) {
	var q models.SolarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if *q.Latitude < -90 || *q.Latitude > 90 {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", "latitude must be between -90 and 90")
		return
	}

	samples := thermal.DailyProfile(*q.Latitude, q.DayOfYear)
	var peak float64
	for _, s := range samples {
		if s.Flux > peak {
			peak = s.Flux
		}
	}
	c.JSON(http.StatusOK, models.SolarProfileResponse{
		Latitude:  *q.Latitude,
		DayOfYear: q.DayOfYear,
		Samples:   samples,
		PeakFlux:  peak,
	})
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
