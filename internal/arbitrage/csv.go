package arbitrage

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"aurora-grid/internal/model"
)

// WriteScheduleCSV writes the full dispatch schedule, one row per acting
// step. This is the CLI's primary artifact for inspecting a run.
func WriteScheduleCSV(path string, series model.ForecastSeries, res Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"index", "ts", "action", "power_mw", "price_per_mwh"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, a := range res.Actions {
		row := []string{
			strconv.Itoa(a.Index),
			series.Points[a.Index].TS.Format(time.RFC3339),
			string(a.Kind),
			fmtFloat(a.PowerMW),
			fmtFloat(a.Price),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
