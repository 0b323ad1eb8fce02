package model

import (
	"sort"
	"time"
)

// DefaultStep is the cadence assumed when it cannot be inferred from the
// data (e.g. duplicate trailing timestamps). Uploaded datasets are
// 15-minute settlement periods.
const DefaultStep = 15 * time.Minute

// PriceObservation is one historical price row for a zone.
// Prices are £/MWh. Rows are append-only; ordering and de-duplication are
// the consumer's problem, so sort before use.
type PriceObservation struct {
	TS          time.Time
	PricePerMWh float64
	Zone        string
}

// FilterZone returns the observations belonging to zone, preserving order.
func FilterZone(obs []PriceObservation, zone string) []PriceObservation {
	out := make([]PriceObservation, 0, len(obs))
	for _, o := range obs {
		if o.Zone == zone {
			out = append(out, o)
		}
	}
	return out
}

// SortByTime sorts observations ascending by timestamp, in place.
// Stable so that duplicate timestamps keep their ingest order.
func SortByTime(obs []PriceObservation) {
	sort.SliceStable(obs, func(i, j int) bool {
		return obs[i].TS.Before(obs[j].TS)
	})
}

// InferStep returns the gap between the two most recent observations of a
// sorted series. Falls back to DefaultStep when the series is too short or
// the trailing gap is zero.
func InferStep(obs []PriceObservation) time.Duration {
	if len(obs) < 2 {
		return DefaultStep
	}
	step := obs[len(obs)-1].TS.Sub(obs[len(obs)-2].TS)
	if step <= 0 {
		return DefaultStep
	}
	return step
}

// Zones returns the distinct zones present, in first-seen order.
func Zones(obs []PriceObservation) []string {
	seen := map[string]bool{}
	var out []string
	for _, o := range obs {
		if !seen[o.Zone] {
			seen[o.Zone] = true
			out = append(out, o.Zone)
		}
	}
	return out
}
