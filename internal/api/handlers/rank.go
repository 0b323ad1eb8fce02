package handlers

import (
	"net/http"

	"aurora-grid/internal/analysis"
	"aurora-grid/internal/api/models"
	"aurora-grid/internal/config"
	"aurora-grid/internal/warehouse"

	"github.com/gin-gonic/gin"
)

// RankHandler ranks ingested zones by arbitrage potential.
type RankHandler struct {
	store    warehouse.Store
	defaults config.DefaultsConfig
}

func NewRankHandler(store warehouse.Store, defaults config.DefaultsConfig) *RankHandler {
	return &RankHandler{store: store, defaults: defaults}
}

// Zones handles GET /rank/zones?horizon=96.
func (h *RankHandler) Zones(c *gin.Context) {
	var q models.RankQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if q.Horizon <= 0 {
		q.Horizon = h.defaults.Horizon
	}

	history, err := h.store.ReadPrices("price")
	if err != nil {
		respondForecastError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rankings": analysis.RankZones(history, q.Horizon)})
}
