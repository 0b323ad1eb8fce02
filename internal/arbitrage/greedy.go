// Package arbitrage turns a price forecast into a battery charge/discharge
// schedule. The policy is a greedy, myopic, single pass over the median
// price path: charge when the price ranks in the cheap tail, discharge when
// it ranks in the expensive tail. It is deliberately not an optimal-control
// solver.
package arbitrage

import (
	"math"

	"aurora-grid/internal/model"
)

const (
	// chargeBelow / dischargeAbove are the min-max rank thresholds for
	// acting. Prices ranked in between leave the battery idle.
	chargeBelow    = 0.3
	dischargeAbove = 0.7

	// rankEpsilon guards the rank denominator on a flat price path.
	rankEpsilon = 1e-6

	// pnlScale converts accumulated £/MWh cashflow into the reported
	// headline figure (k£).
	pnlScale = 1000.0
)

// Result is the outcome of one optimization run.
type Result struct {
	// Actions is the full dispatch schedule, one entry per step where the
	// battery acted, in time order.
	Actions []model.DispatchAction

	// Windows is every collapsed action window, in emission order.
	Windows []model.ActionWindow

	// ExpectedPnL is the accumulated profit scaled by pnlScale, rounded to
	// two decimals.
	ExpectedPnL float64

	// FinalSOC is the simulated state of charge after the last step.
	FinalSOC float64
}

// Optimize runs the greedy heuristic over the forecast's p50 path.
// SOC starts at battery.MinSOC and is owned entirely by this call; the run
// is pure given its inputs. Battery parameters are taken as-is — callers
// wanting sanity checks use BatteryParams.Validate first.
func Optimize(series model.ForecastSeries, battery model.BatteryParams) Result {
	prices := series.P50Path()
	if len(prices) == 0 {
		return Result{FinalSOC: battery.MinSOC}
	}

	stepHours := series.Step().Hours()

	lo, hi := prices[0], prices[0]
	for _, p := range prices {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	span := hi - lo + rankEpsilon

	soc := battery.MinSOC
	profit := 0.0
	var actions []model.DispatchAction

	for i, price := range prices {
		rank := (price - lo) / span
		switch {
		case rank < chargeBelow && soc < battery.MaxSOC:
			power := math.Min(battery.PowerMW,
				(battery.MaxSOC-soc)/battery.ChargeEfficiency/stepHours)
			energy := power * stepHours
			soc += energy * battery.ChargeEfficiency
			profit -= energy * price
			actions = append(actions, model.DispatchAction{
				Index: i, Kind: model.ActionCharge, PowerMW: power, Price: price,
			})
		case rank > dischargeAbove && soc > battery.MinSOC:
			power := math.Min(battery.PowerMW, (soc-battery.MinSOC)/stepHours)
			energy := power * stepHours
			soc -= energy
			profit += energy * price * battery.DischargeEfficiency
			actions = append(actions, model.DispatchAction{
				Index: i, Kind: model.ActionDischarge, PowerMW: power, Price: price,
			})
		}
	}

	return Result{
		Actions:     actions,
		Windows:     CollapseWindows(actions, series),
		ExpectedPnL: round2(profit / pnlScale),
		FinalSOC:    soc,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
