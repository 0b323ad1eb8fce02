package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrices(t *testing.T) {
	csv := `ts,price_per_mwh,zone
2025-06-01T00:00:00Z,42.5,Z1
2025-06-01T00:15:00Z,38.0,Z1
2025-06-01T00:00:00Z,55.0,Z2
`
	rows, err := ParsePrices(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 42.5, rows[0].PricePerMWh)
	assert.Equal(t, "Z1", rows[0].Zone)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), rows[0].TS)
	assert.Equal(t, "Z2", rows[2].Zone)
}

func TestParsePrices_ColumnOrderIndependent(t *testing.T) {
	csv := `zone,ts,price_per_mwh
Z1,2025-06-01 00:00:00,42.5
`
	rows, err := ParsePrices(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 42.5, rows[0].PricePerMWh)
}

func TestParsePrices_MissingColumn(t *testing.T) {
	csv := `ts,price,zone
2025-06-01T00:00:00Z,42.5,Z1
`
	_, err := ParsePrices(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price_per_mwh")
}

func TestParsePrices_BadRow(t *testing.T) {
	csv := `ts,price_per_mwh,zone
2025-06-01T00:00:00Z,not-a-number,Z1
`
	_, err := ParsePrices(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParsePrices_BadTimestamp(t *testing.T) {
	csv := `ts,price_per_mwh,zone
yesterday,42.5,Z1
`
	_, err := ParsePrices(strings.NewReader(csv))
	require.Error(t, err)
}

func TestCountRows(t *testing.T) {
	csv := `ts,demand_mw,zone
2025-06-01T00:00:00Z,120,Z1
2025-06-01T00:15:00Z,118,Z1
`
	n, err := CountRows(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountRows_RequiresTSColumn(t *testing.T) {
	_, err := CountRows(strings.NewReader("when,value\n1,2\n"))
	require.Error(t, err)
}

func TestKnownDataset(t *testing.T) {
	assert.True(t, KnownDataset("price"))
	assert.True(t, KnownDataset("demand"))
	assert.True(t, KnownDataset("weather"))
	assert.False(t, KnownDataset("prices"))
}
