package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"net/http"

	"energy-econ/internal/api/models"
	"energy-econ/internal/grid"
	"energy-econ/internal/model"
	"energy-econ/internal/render"
	"energy-econ/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pngContentType = "image/png"

// MethaneHandler serves methane cost lookups and rendered cost grids.
type MethaneHandler struct {
	coeffs model.MethaneCoefficients
	store  store.Store
	logger *zap.Logger
}

// NewMethaneHandler creates a methane handler backed by artifacts.
func NewMethaneHandler(coeffs model.MethaneCoefficients, artifacts store.Store, logger *zap.Logger) *MethaneHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MethaneHandler{coeffs: coeffs, store: artifacts, logger: logger}
}

// Cost handles POST /api/v1/methane/cost
func (h *MethaneHandler) Cost(c *gin.Context) {
	var req models.MethaneCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	unitStr := req.Unit
	if unitStr == "" {
		unitStr = string(model.UnitKg)
	}
	unit, err := model.ParseUnit(unitStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_UNIT", err.Error())
		return
	}

	perKg := h.coeffs.CostPerKg(*req.CO2Price, *req.H2Price)
	cost := unit.Convert(perKg, h.coeffs)
	if !finite(perKg) || !finite(cost) {
		abortWithError(c, http.StatusUnprocessableEntity, "NON_FINITE_RESULT", "prices overflow the cost to a non-finite value")
		return
	}
	c.JSON(http.StatusOK, models.MethaneCostResponse{
		CO2Price:  *req.CO2Price,
		H2Price:   *req.H2Price,
		CostPerKg: perKg,
		Unit:      string(unit),
		Cost:      cost,
	})
}

// Grid handles POST /api/v1/methane/grid
func (h *MethaneHandler) Grid(c *gin.Context) {
	var req models.MethaneGridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if err := render.ValidPalette(req.Palette); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_PALETTE", err.Error())
		return
	}

	g, err := grid.Evaluate(req.CO2Prices, req.H2Prices, req.Unit, h.coeffs)
	switch {
	case errors.Is(err, model.ErrInvalidUnit):
		abortWithError(c, http.StatusBadRequest, "INVALID_UNIT", err.Error())
		return
	case errors.Is(err, grid.ErrEmptyAxis):
		abortWithError(c, http.StatusBadRequest, "EMPTY_AXIS", err.Error())
		return
	case err != nil:
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if !g.Finite() {
		abortWithError(c, http.StatusUnprocessableEntity, "NON_FINITE_RESULT", "prices overflow the cost to a non-finite value")
		return
	}

	var buf bytes.Buffer
	opts := render.Options{Title: req.Title, Palette: req.Palette, Format: "png"}
	if err := render.Write(&buf, g, opts); err != nil {
		h.logger.Error("render heat-map", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "RENDER_ERROR", err.Error())
		return
	}

	name := render.FileName(g.Unit, "png")
	id, err := h.store.Put(c.Request.Context(), store.Artifact{
		Name:        name,
		ContentType: pngContentType,
		Data:        buf.Bytes(),
	})
	if err != nil {
		h.logger.Error("store heat-map", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to store rendered image")
		return
	}
	h.logger.Info("rendered methane grid",
		zap.String("id", id),
		zap.String("unit", string(g.Unit)),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
		zap.Int("bytes", buf.Len()))

	c.JSON(http.StatusOK, models.MethaneGridResponse{
		ID:        id,
		Unit:      string(g.Unit),
		CO2Prices: g.CO2Prices,
		H2Prices:  g.H2Prices,
		Costs:     g.Costs,
		Min:       g.Min(),
		Max:       g.Max(),
		ImageURL:  fmt.Sprintf("/api/v1/methane/grid/%s/image", id),
		ImageName: name,
	})
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Image handles GET /api/v1/methane/grid/:id/image
func (h *MethaneHandler) Image(c *gin.Context) {
	id := c.Param("id")
	if !store.ValidID(id) {
		abortWithError(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("no image with id %q", id))
		return
	}

	a, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrArtifactNotFound) {
		abortWithError(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("no image with id %q", id))
		return
	}
	if err != nil {
		h.logger.Error("load heat-map", zap.String("id", id), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to load image")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", a.Name))
	c.Data(http.StatusOK, a.ContentType, a.Data)
}
