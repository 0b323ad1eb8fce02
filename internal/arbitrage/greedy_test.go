package arbitrage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurora-grid/internal/model"
)

func series(p50 func(i int) float64, n int) model.ForecastSeries {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	points := make([]model.ForecastPoint, n)
	for i := 0; i < n; i++ {
		v := p50(i)
		points[i] = model.ForecastPoint{
			TS:  start.Add(time.Duration(i) * 15 * time.Minute),
			P10: v - 1, P50: v, P90: v + 1,
		}
	}
	return model.ForecastSeries{Zone: "Z1", Points: points}
}

// vShape is cheap in the middle third, expensive on both ends.
func vShape(i int) float64 {
	switch {
	case i < 32:
		return 100
	case i < 64:
		return 20
	default:
		return 100
	}
}

func TestOptimize_FlatPricesChargeOnly(t *testing.T) {
	res := Optimize(series(func(int) float64 { return 50 }, 96), model.DefaultBattery())

	// Flat path: every rank is 0, so the battery charges until full and
	// then stalls. No discharge ever fires.
	require.NotEmpty(t, res.Actions)
	for _, a := range res.Actions {
		assert.Equal(t, model.ActionCharge, a.Kind)
	}
	assert.Len(t, res.Windows, 1)
	assert.InDelta(t, 0.9, res.FinalSOC, 1e-9)

	// 0.8 SOC to fill at 0.2375 per full-power step: 3 full steps, then a
	// partial one (plus possible float-residue micro-steps afterwards).
	require.GreaterOrEqual(t, len(res.Actions), 4)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0, res.Actions[i].PowerMW, 1e-9)
	}
	// Cost only, so the headline PnL is non-positive.
	assert.LessOrEqual(t, res.ExpectedPnL, 0.0)
}

func TestOptimize_SOCStaysWithinBounds(t *testing.T) {
	batt := model.DefaultBattery()
	res := Optimize(series(vShape, 96), batt)

	stepHours := 0.25
	soc := batt.MinSOC
	for _, a := range res.Actions {
		switch a.Kind {
		case model.ActionCharge:
			soc += a.PowerMW * stepHours * batt.ChargeEfficiency
		case model.ActionDischarge:
			soc -= a.PowerMW * stepHours
		}
		assert.GreaterOrEqual(t, soc, batt.MinSOC-1e-9)
		assert.LessOrEqual(t, soc, batt.MaxSOC+1e-9)
	}
	assert.InDelta(t, soc, res.FinalSOC, 1e-9)
}

func TestOptimize_BuyLowSellHigh(t *testing.T) {
	res := Optimize(series(vShape, 96), model.DefaultBattery())

	require.NotEmpty(t, res.Actions)
	// Charges happen at the cheap price, discharges at the expensive one.
	for _, a := range res.Actions {
		if a.Kind == model.ActionCharge {
			assert.Equal(t, 20.0, a.Price)
		} else {
			assert.Equal(t, 100.0, a.Price)
		}
	}
	// One charge run in the trough, one discharge run after it.
	require.Len(t, res.Windows, 2)
	assert.Equal(t, model.ActionCharge, res.Windows[0].Kind)
	assert.Equal(t, model.ActionDischarge, res.Windows[1].Kind)
	assert.Greater(t, res.ExpectedPnL, 0.0)
}

func TestOptimize_NoInitialDischarge(t *testing.T) {
	// Prices fall from a peak: SOC starts at the floor, so the early
	// high-rank steps cannot discharge, and only the cheap tail charges.
	desc := func(i int) float64 {
		switch {
		case i < 32:
			return 100
		case i < 64:
			return 60
		default:
			return 20
		}
	}
	res := Optimize(series(desc, 96), model.DefaultBattery())

	require.NotEmpty(t, res.Actions)
	for _, a := range res.Actions {
		assert.Equal(t, model.ActionCharge, a.Kind)
		assert.Equal(t, 20.0, a.Price)
	}
	assert.Len(t, res.Windows, 1)
}

func TestOptimize_PowerCapRespected(t *testing.T) {
	batt := model.DefaultBattery()
	res := Optimize(series(vShape, 96), batt)

	for _, a := range res.Actions {
		assert.LessOrEqual(t, a.PowerMW, batt.PowerMW+1e-9)
		assert.Greater(t, a.PowerMW, 0.0)
	}
}

func TestOptimize_EmptySeries(t *testing.T) {
	res := Optimize(model.ForecastSeries{Zone: "Z1"}, model.DefaultBattery())
	assert.Empty(t, res.Actions)
	assert.Empty(t, res.Windows)
	assert.Zero(t, res.ExpectedPnL)
	assert.InDelta(t, 0.1, res.FinalSOC, 1e-9)
}

func TestOptimize_PnLRounding(t *testing.T) {
	res := Optimize(series(vShape, 96), model.DefaultBattery())
	// Reported figure is rounded to two decimals.
	assert.InDelta(t, res.ExpectedPnL, float64(int(res.ExpectedPnL*100+0.5))/100, 1e-9)
}
