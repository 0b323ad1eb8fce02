package handlers

import (
	"net/http"

	"aurora-grid/internal/api/models"
	"aurora-grid/internal/arbitrage"
	"aurora-grid/internal/config"
	"aurora-grid/internal/forecast"
	"aurora-grid/internal/model"
	"aurora-grid/internal/warehouse"

	"github.com/gin-gonic/gin"
)

// OptimizeHandler runs the greedy storage dispatch over a fresh forecast.
type OptimizeHandler struct {
	store    warehouse.Store
	defaults config.DefaultsConfig
}

func NewOptimizeHandler(store warehouse.Store, defaults config.DefaultsConfig) *OptimizeHandler {
	return &OptimizeHandler{store: store, defaults: defaults}
}

// Storage handles POST /optimize/storage.
func (h *OptimizeHandler) Storage(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	h.applyDefaults(&req)

	history, err := h.store.ReadPrices("price")
	if err != nil {
		respondForecastError(c, err)
		return
	}

	series, err := forecast.Forecast(history, req.Zone, req.Horizon)
	if err != nil {
		respondForecastError(c, err)
		return
	}

	res := arbitrage.Optimize(series, model.BatteryParams{
		CapacityMWh:         req.CapacityMWh,
		PowerMW:             req.PowerMW,
		MinSOC:              req.MinSOC,
		MaxSOC:              req.MaxSOC,
		ChargeEfficiency:    req.EtaIn,
		DischargeEfficiency: req.EtaOut,
	})

	top := arbitrage.TopWindows(res.Windows, arbitrage.TopWindowCount)
	actions := make([]models.Action, len(top))
	for i, w := range top {
		actions[i] = models.Action{
			Type:  string(w.Kind),
			Start: w.Start,
			End:   w.End,
			AvgMW: w.AvgMW,
		}
	}

	c.JSON(http.StatusOK, models.OptimizeResponse{
		ExpectedPnLGBP: res.ExpectedPnL,
		Actions:        actions,
	})
}

// applyDefaults fills zero-valued request fields from the server defaults.
// Supplied values pass through untouched, including combinations like
// min_soc > max_soc: the optimizer contract is permissive.
func (h *OptimizeHandler) applyDefaults(req *models.OptimizeRequest) {
	b := h.defaults.Battery
	if req.CapacityMWh == 0 {
		req.CapacityMWh = b.CapacityMWh
	}
	if req.PowerMW == 0 {
		req.PowerMW = b.PowerMW
	}
	if req.MinSOC == 0 {
		req.MinSOC = b.MinSOC
	}
	if req.MaxSOC == 0 {
		req.MaxSOC = b.MaxSOC
	}
	if req.EtaIn == 0 {
		req.EtaIn = b.ChargeEfficiency
	}
	if req.EtaOut == 0 {
		req.EtaOut = b.DischargeEfficiency
	}
	if req.Horizon <= 0 {
		req.Horizon = h.defaults.Horizon
	}
	if req.Zone == "" {
		req.Zone = h.defaults.Zone
	}
}
