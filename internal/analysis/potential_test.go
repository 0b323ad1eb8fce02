package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurora-grid/internal/forecast"
	"aurora-grid/internal/model"
)

func zoneHistory(zone string, n int, price func(i int) float64) []model.PriceObservation {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.PriceObservation, n)
	for i := 0; i < n; i++ {
		out[i] = model.PriceObservation{
			TS:          start.Add(time.Duration(i) * 15 * time.Minute),
			PricePerMWh: price(i),
			Zone:        zone,
		}
	}
	return out
}

func TestComputePotential(t *testing.T) {
	hist := zoneHistory("Z1", 96, func(i int) float64 { return float64(10 + i) })

	p, err := ComputePotential(hist, "Z1", 96)
	require.NoError(t, err)

	assert.Equal(t, "Z1", p.Zone)
	assert.Equal(t, 96, p.Count)
	assert.Equal(t, 10.0, p.MinPrice)
	assert.Equal(t, 105.0, p.MaxPrice)
	assert.InDelta(t, 57.5, p.MeanPrice, 1e-9)
	assert.Greater(t, p.P95Price, p.P05Price)
	assert.InDelta(t, p.P95Price-p.P05Price, p.SpreadP95P05, 1e-9)
}

func TestComputePotential_InsufficientData(t *testing.T) {
	hist := zoneHistory("Z1", 10, func(int) float64 { return 50 })
	_, err := ComputePotential(hist, "Z1", 96)
	require.ErrorIs(t, err, forecast.ErrInsufficientData)
}

func TestRankZones(t *testing.T) {
	// Z1 is volatile (arbitrage-friendly), Z2 is flat, Z3 is too short.
	hist := zoneHistory("Z1", 192, func(i int) float64 {
		return 60 + 40*math.Sin(float64(i)*math.Pi/48)
	})
	hist = append(hist, zoneHistory("Z2", 192, func(int) float64 { return 50 })...)
	hist = append(hist, zoneHistory("Z3", 5, func(int) float64 { return 50 })...)

	rankings := RankZones(hist, 96)
	require.Len(t, rankings, 2, "short zone is skipped")

	assert.Equal(t, "Z1", rankings[0].Zone)
	assert.Equal(t, "Z2", rankings[1].Zone)
	assert.GreaterOrEqual(t, rankings[0].GreedyProfit, rankings[1].GreedyProfit)
	assert.Greater(t, rankings[0].SpreadP95P05, rankings[1].SpreadP95P05)
}

func TestPercentileSorted(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}
	assert.Equal(t, 1.0, percentileSorted(vals, 0))
	assert.Equal(t, 5.0, percentileSorted(vals, 1))
	assert.Equal(t, 3.0, percentileSorted(vals, 0.5))
	assert.InDelta(t, 1.2, percentileSorted(vals, 0.05), 1e-9)
	assert.Equal(t, 0.0, percentileSorted(nil, 0.5))
}
