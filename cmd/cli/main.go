package main

import (
	"flag"
	"fmt"
	"os"

	"aurora-grid/internal/analysis"
	"aurora-grid/internal/arbitrage"
	"aurora-grid/internal/forecast"
	"aurora-grid/internal/ingest"
	"aurora-grid/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "forecast":
		cmdForecast(os.Args[2:])
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli forecast --data price.csv --zone Z1 --horizon 96 --out forecast.csv")
	fmt.Println("  cli optimize --data price.csv --zone Z1 --horizon 96 --out schedule.csv")
	fmt.Println("  cli rank --data price.csv --horizon 96")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - price.csv columns: ts,price_per_mwh,zone")
	fmt.Println("  - optimize prints the top action windows and expected PnL; --out writes the full schedule")
}

func loadPrices(path string) []model.PriceObservation {
	f, err := os.Open(path)
	if err != nil {
		fatal(err)
	}
	defer f.Close()

	rows, err := ingest.ParsePrices(f)
	if err != nil {
		fatal(fmt.Errorf("parse %s: %w", path, err))
	}
	return rows
}

func cmdForecast(args []string) {
	fs := flag.NewFlagSet("forecast", flag.ExitOnError)
	dataPath := fs.String("data", "price.csv", "Path to price CSV")
	zone := fs.String("zone", "Z1", "Zone to forecast")
	horizon := fs.Int("horizon", 96, "Number of future steps")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	series, err := forecast.Forecast(loadPrices(*dataPath), *zone, *horizon)
	if err != nil {
		fatal(err)
	}

	if *outPath != "" {
		if err := forecast.WriteCSV(*outPath, series); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %d points to %s\n", len(series.Points), *outPath)
		return
	}
	for _, p := range series.Points {
		fmt.Printf("%s  p10=%.2f  p50=%.2f  p90=%.2f\n",
			p.TS.Format("2006-01-02 15:04"), p.P10, p.P50, p.P90)
	}
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	dataPath := fs.String("data", "price.csv", "Path to price CSV")
	zone := fs.String("zone", "Z1", "Zone to optimize")
	horizon := fs.Int("horizon", 96, "Forecast horizon in steps")
	outPath := fs.String("out", "", "Optional schedule CSV path")
	capacity := fs.Float64("capacity", 2.0, "Capacity MWh")
	power := fs.Float64("power", 1.0, "Max power MW")
	minSOC := fs.Float64("min-soc", 0.10, "Min state of charge")
	maxSOC := fs.Float64("max-soc", 0.90, "Max state of charge")
	etaIn := fs.Float64("eta-in", 0.95, "Charge efficiency")
	etaOut := fs.Float64("eta-out", 0.95, "Discharge efficiency")
	strict := fs.Bool("strict", false, "Validate battery parameters before running")
	_ = fs.Parse(args)

	battery := model.BatteryParams{
		CapacityMWh:         *capacity,
		PowerMW:             *power,
		MinSOC:              *minSOC,
		MaxSOC:              *maxSOC,
		ChargeEfficiency:    *etaIn,
		DischargeEfficiency: *etaOut,
	}
	if *strict {
		if err := battery.Validate(); err != nil {
			fatal(fmt.Errorf("battery config invalid: %w", err))
		}
	}

	series, err := forecast.Forecast(loadPrices(*dataPath), *zone, *horizon)
	if err != nil {
		fatal(err)
	}

	res := arbitrage.Optimize(series, battery)

	fmt.Printf("zone=%s horizon=%d actions=%d windows=%d final_soc=%.3f expected_pnl=%.2f\n",
		*zone, *horizon, len(res.Actions), len(res.Windows), res.FinalSOC, res.ExpectedPnL)
	for _, w := range arbitrage.TopWindows(res.Windows, arbitrage.TopWindowCount) {
		fmt.Printf("  %-9s  %s -> %s  ~%.2f MW\n",
			w.Kind, w.Start.Format("01-02 15:04"), w.End.Format("01-02 15:04"), w.AvgMW)
	}

	if *outPath != "" {
		if err := arbitrage.WriteScheduleCSV(*outPath, series, res); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote schedule to %s\n", *outPath)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	dataPath := fs.String("data", "price.csv", "Path to price CSV")
	horizon := fs.Int("horizon", 96, "Forecast horizon in steps")
	_ = fs.Parse(args)

	rankings := analysis.RankZones(loadPrices(*dataPath), *horizon)
	if len(rankings) == 0 {
		fmt.Println("no zones with enough data to rank")
		return
	}
	for i, r := range rankings {
		fmt.Printf("%2d. %-6s rows=%-6d spread=%.2f mean=%.2f greedy_profit=%.2f\n",
			i+1, r.Zone, r.Count, r.SpreadP95P05, r.MeanPrice, r.GreedyProfit)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
