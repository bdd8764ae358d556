// Package api wires the HTTP handlers into a gin engine.
package api

import (
	"net/http"

	"energy-econ/internal/api/handlers"
	"energy-econ/internal/api/middleware"
	"energy-econ/internal/api/models"
	"energy-econ/internal/config"
	"energy-econ/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Config *config.Config
	Store  store.Store
	Logger *zap.Logger
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(d.Config.API.AllowOrigins))
	router.Use(middleware.NewRateLimiter(d.Config.API.RatePerSec, d.Config.API.Burst).Handler())

	methaneHandler := handlers.NewMethaneHandler(d.Config.Methane.Coefficients, d.Store, logger)
	greenhouseHandler := handlers.NewGreenhouseHandler(d.Config.Greenhouse)
	thermalHandler := handlers.NewThermalHandler(d.Config.Thermal)

	router.GET("/health", handlers.Health)

	api := router.Group("/api/v1")
	{
		api.POST("/methane/cost", methaneHandler.Cost)
		api.POST("/methane/grid", methaneHandler.Grid)
		api.GET("/methane/grid/:id/image", methaneHandler.Image)

		api.GET("/greenhouse/degree-hour", greenhouseHandler.DegreeHour)
		api.POST("/thermal/simulate", thermalHandler.Simulate)
		api.GET("/solar/profile", handlers.SolarProfile)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"},
		})
	})
	return router
}

// NewHandler wraps the router with gzip response compression.
func NewHandler(d Deps) http.Handler {
	return gzhttp.GzipHandler(NewRouter(d))
}
