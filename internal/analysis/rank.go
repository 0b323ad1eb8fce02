package analysis

import (
	"sort"

	"aurora-grid/internal/model"
)

// RankZones computes potentials for every zone present in history and sorts
// descending by greedy profit. Zones with too little data to forecast are
// skipped rather than reported with misleading zeros.
func RankZones(history []model.PriceObservation, horizon int) []ZonePotential {
	out := make([]ZonePotential, 0)
	for _, zone := range model.Zones(history) {
		p, err := ComputePotential(history, zone, horizon)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GreedyProfit > out[j].GreedyProfit
	})
	return out
}
