package handlers

import (
	"net/http"

	"aurora-grid/internal/api/models"
	"aurora-grid/internal/config"
	"aurora-grid/internal/forecast"
	"aurora-grid/internal/model"
	"aurora-grid/internal/warehouse"

	"github.com/gin-gonic/gin"
)

// ForecastHandler serves price forecasts from the ingested price dataset.
type ForecastHandler struct {
	store    warehouse.Store
	defaults config.DefaultsConfig
}

func NewForecastHandler(store warehouse.Store, defaults config.DefaultsConfig) *ForecastHandler {
	return &ForecastHandler{store: store, defaults: defaults}
}

// Price handles GET /forecast/price?zone=Z1&horizon=96.
func (h *ForecastHandler) Price(c *gin.Context) {
	var q models.ForecastQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if q.Zone == "" {
		q.Zone = h.defaults.Zone
	}
	if q.Horizon <= 0 {
		q.Horizon = h.defaults.Horizon
	}

	history, err := h.store.ReadPrices("price")
	if err != nil {
		respondForecastError(c, err)
		return
	}

	series, err := forecast.Forecast(history, q.Zone, q.Horizon)
	if err != nil {
		respondForecastError(c, err)
		return
	}

	c.JSON(http.StatusOK, toForecastResponse(series))
}

func toForecastResponse(series model.ForecastSeries) models.ForecastResponse {
	points := make([]models.ForecastPoint, len(series.Points))
	for i, p := range series.Points {
		points[i] = models.ForecastPoint{TS: p.TS, P10: p.P10, P50: p.P50, P90: p.P90}
	}
	return models.ForecastResponse{Zone: series.Zone, Points: points}
}
