// Package forecast produces the naive probabilistic price forecast consumed
// by the storage optimizer. It is not a statistical model: the p50 path is a
// trailing rolling mean plus seeded noise, and the p10/p90 band is a fixed
// multiple of trailing volatility.
package forecast

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"aurora-grid/internal/model"
)

const (
	// MinObservations is the smallest zone history the forecaster accepts.
	MinObservations = 32

	// rollingWindow is the trailing window for the mean/stddev statistics.
	// 96 steps = one day at 15-minute cadence.
	rollingWindow = 96

	// noiseFloor keeps the noise distribution non-degenerate on flat series.
	noiseFloor = 0.01

	// bandWidth scales the p10/p90 spread around p50.
	bandWidth = 0.7

	// noiseSeed fixes the pseudo-random draws so the forecast is exactly
	// repeatable for identical input history.
	noiseSeed = 42
)

// ErrInsufficientData is returned when a zone has fewer than MinObservations
// historical rows. Callers translate it into a user-facing response; no
// partial forecast is ever produced.
var ErrInsufficientData = fmt.Errorf("insufficient data")

// Forecast produces a p10/p50/p90 series of exactly horizon points for the
// given zone. The step duration is inferred from the two most recent
// observations. Deterministic: a fresh seeded source is constructed per
// call, so concurrent calls cannot perturb each other's draws.
func Forecast(history []model.PriceObservation, zone string, horizon int) (model.ForecastSeries, error) {
	if horizon <= 0 {
		return model.ForecastSeries{}, fmt.Errorf("horizon must be positive, got %d", horizon)
	}

	rows := model.FilterZone(history, zone)
	if len(rows) < MinObservations {
		return model.ForecastSeries{}, fmt.Errorf("%w: zone %q has %d rows, need %d",
			ErrInsufficientData, zone, len(rows), MinObservations)
	}
	model.SortByTime(rows)

	step := model.InferStep(rows)
	base := trailingMean(rows, rollingWindow)
	vol := trailingStddev(rows, rollingWindow)

	rng := rand.New(rand.NewSource(noiseSeed))
	noiseStd := math.Max(vol, noiseFloor)
	band := bandWidth * math.Max(vol, 1)

	last := rows[len(rows)-1].TS
	points := make([]model.ForecastPoint, horizon)
	for k := 0; k < horizon; k++ {
		p50 := math.Max(0, base+rng.NormFloat64()*noiseStd)
		points[k] = model.ForecastPoint{
			TS:  last.Add(time.Duration(k+1) * step),
			P10: math.Max(0, p50-band),
			P50: p50,
			P90: p50 + band,
		}
	}

	return model.ForecastSeries{Zone: zone, Points: points}, nil
}

// trailingMean is the rolling mean at the last index: the mean of the last
// min(window, n) prices.
func trailingMean(rows []model.PriceObservation, window int) float64 {
	n := len(rows)
	if n == 0 {
		return 0
	}
	w := window
	if n < w {
		w = n
	}
	sum := 0.0
	for _, r := range rows[n-w:] {
		sum += r.PricePerMWh
	}
	return sum / float64(w)
}

// trailingStddev is the rolling population stddev at the last index.
// Partial windows are zero-filled, so series shorter than the window report
// zero volatility.
func trailingStddev(rows []model.PriceObservation, window int) float64 {
	n := len(rows)
	if n < window {
		return 0
	}
	tail := rows[n-window:]
	mean := 0.0
	for _, r := range tail {
		mean += r.PricePerMWh
	}
	mean /= float64(window)

	ss := 0.0
	for _, r := range tail {
		d := r.PricePerMWh - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(window))
}
