package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"aurora-grid/internal/arbitrage"
	"aurora-grid/internal/forecast"
	"aurora-grid/internal/model"
)

// Demo:
// - Generate two days of synthetic 15-minute prices with a daily shape
// - Forecast the next day
// - Run the greedy dispatcher and print what it would do
func main() {
	zone := flag.String("zone", "Z1", "Zone label for the synthetic data")
	horizon := flag.Int("horizon", 96, "Forecast horizon in steps")
	flag.Parse()

	history := syntheticPrices(*zone, 192)

	series, err := forecast.Forecast(history, *zone, *horizon)
	if err != nil {
		panic(err)
	}
	fmt.Printf("forecast: %d points, step %s, p50[0]=%.2f\n",
		len(series.Points), series.Step(), series.Points[0].P50)

	res := arbitrage.Optimize(series, model.DefaultBattery())
	fmt.Printf("dispatch: %d actions in %d windows, final SOC %.3f, expected PnL %.2f\n",
		len(res.Actions), len(res.Windows), res.FinalSOC, res.ExpectedPnL)

	for _, w := range arbitrage.TopWindows(res.Windows, arbitrage.TopWindowCount) {
		fmt.Printf("  %-9s  %s -> %s  ~%.2f MW\n",
			w.Kind, w.Start.Format("15:04"), w.End.Format("15:04"), w.AvgMW)
	}
}

// syntheticPrices produces n steps of a sinusoidal daily price shape:
// cheap overnight, expensive in the evening peak.
func syntheticPrices(zone string, n int) []model.PriceObservation {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.PriceObservation, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * 15 * time.Minute)
		hour := float64(ts.Hour()) + float64(ts.Minute())/60
		price := 60 + 35*math.Sin((hour-9)*math.Pi/12)
		out[i] = model.PriceObservation{TS: ts, PricePerMWh: price, Zone: zone}
	}
	return out
}
