package forecast

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"aurora-grid/internal/model"
)

// WriteCSV writes a forecast series as ts,p10,p50,p90 rows.
func WriteCSV(path string, series model.ForecastSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ts", "p10", "p50", "p90"}); err != nil {
		return err
	}
	for _, p := range series.Points {
		row := []string{
			p.TS.Format(time.RFC3339),
			strconv.FormatFloat(p.P10, 'f', 6, 64),
			strconv.FormatFloat(p.P50, 'f', 6, 64),
			strconv.FormatFloat(p.P90, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
