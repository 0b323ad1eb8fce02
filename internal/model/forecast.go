package model

import "time"

// ForecastPoint is one future step's forecasted price distribution.
// p10 <= p50 <= p90 holds by construction (non-negative clamping plus a
// symmetric band), not by any statistical guarantee.
type ForecastPoint struct {
	TS  time.Time
	P10 float64
	P50 float64
	P90 float64
}

// ForecastSeries is an ordered fixed-cadence sequence of forecast points.
type ForecastSeries struct {
	Zone   string
	Points []ForecastPoint
}

// Step returns the series cadence, taken from the first two points.
// Falls back to DefaultStep for degenerate series.
func (s ForecastSeries) Step() time.Duration {
	if len(s.Points) < 2 {
		return DefaultStep
	}
	step := s.Points[1].TS.Sub(s.Points[0].TS)
	if step <= 0 {
		return DefaultStep
	}
	return step
}

// P50Path returns the median price path.
func (s ForecastSeries) P50Path() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.P50
	}
	return out
}
