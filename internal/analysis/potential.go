// Package analysis summarizes stored price data per zone so operators can
// see where storage arbitrage is worth pursuing.
package analysis

import (
	"math"
	"sort"

	"aurora-grid/internal/arbitrage"
	"aurora-grid/internal/forecast"
	"aurora-grid/internal/model"
)

// ZonePotential is a zone-level summary usable for ranking. Price stats are
// raw history; GreedyProfit is what the greedy dispatcher would extract
// from the zone's own forecast with the default battery.
type ZonePotential struct {
	Zone  string `json:"zone"`
	Count int    `json:"count"`

	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	MeanPrice float64 `json:"mean_price"`
	P05Price  float64 `json:"p05_price"`
	P95Price  float64 `json:"p95_price"`

	SpreadP95P05 float64 `json:"spread_p95_p05"`

	GreedyProfit float64 `json:"greedy_profit"`
}

// ComputePotential builds a zone summary from full history. Fails only
// when the zone lacks enough rows to forecast.
func ComputePotential(history []model.PriceObservation, zone string, horizon int) (ZonePotential, error) {
	series, err := forecast.Forecast(history, zone, horizon)
	if err != nil {
		return ZonePotential{}, err
	}

	rows := model.FilterZone(history, zone)
	p := ZonePotential{Zone: zone, Count: len(rows)}

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(rows))
	for _, r := range rows {
		v := r.PricePerMWh
		vals = append(vals, v)
		sum += v
		minv = math.Min(minv, v)
		maxv = math.Max(maxv, v)
	}
	sort.Float64s(vals)
	p.MinPrice = minv
	p.MaxPrice = maxv
	p.MeanPrice = sum / float64(len(vals))
	p.P05Price = percentileSorted(vals, 0.05)
	p.P95Price = percentileSorted(vals, 0.95)
	p.SpreadP95P05 = p.P95Price - p.P05Price

	res := arbitrage.Optimize(series, model.DefaultBattery())
	p.GreedyProfit = res.ExpectedPnL
	return p, nil
}

// percentileSorted interpolates linearly between order statistics.
func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
