// Package ingest parses uploaded CSV datasets. Price data is parsed into
// typed observations; demand and weather uploads get header checks and a
// row count only, since nothing downstream consumes them yet.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"aurora-grid/internal/model"
)

// DatasetNames are the accepted upload targets.
var DatasetNames = []string{"price", "demand", "weather"}

// KnownDataset reports whether name is an accepted upload target.
func KnownDataset(name string) bool {
	for _, n := range DatasetNames {
		if n == name {
			return true
		}
	}
	return false
}

// tsLayouts are the accepted timestamp formats, tried in order.
var tsLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParsePrices reads a price CSV (header: ts,price_per_mwh,zone) into
// observations. Rows are returned in file order; sorting is the consumer's
// job since uploads tolerate out-of-order and duplicate timestamps.
func ParsePrices(r io.Reader) ([]model.PriceObservation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col, err := headerIndex(header, "ts", "price_per_mwh", "zone")
	if err != nil {
		return nil, err
	}

	var out []model.PriceObservation
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		ts, err := parseTS(rec[col["ts"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(rec[col["price_per_mwh"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad price %q", line, rec[col["price_per_mwh"]])
		}

		out = append(out, model.PriceObservation{
			TS:          ts,
			PricePerMWh: price,
			Zone:        strings.TrimSpace(rec[col["zone"]]),
		})
	}
	return out, nil
}

// CountRows validates that the CSV has a ts column and returns the number
// of data rows. Used for demand/weather uploads, which are stored raw.
func CountRows(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if _, err := headerIndex(header, "ts"); err != nil {
		return 0, err
	}

	n := 0
	for {
		if _, err := cr.Read(); err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

func headerIndex(header []string, required ...string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return col, nil
}

func parseTS(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range tsLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad timestamp %q", s)
}
