package models

import "time"

// ForecastPoint is one step of the forecast response. Field names match
// what the dashboard plots.
type ForecastPoint struct {
	TS  time.Time `json:"ts"`
	P10 float64   `json:"p10"`
	P50 float64   `json:"p50"`
	P90 float64   `json:"p90"`
}

// ForecastResponse wraps the forecast series.
type ForecastResponse struct {
	Zone   string          `json:"zone"`
	Points []ForecastPoint `json:"points"`
}

// Action is one reported action window.
type Action struct {
	Type  string    `json:"type"` // "charge" or "discharge"
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	AvgMW float64   `json:"avg_mw"`
}

// OptimizeResponse is the POST /optimize/storage result.
type OptimizeResponse struct {
	ExpectedPnLGBP float64  `json:"expected_pnl_gbp"`
	Actions        []Action `json:"actions"`
}

// IngestResponse acknowledges a dataset upload.
type IngestResponse struct {
	ID      string `json:"id"`
	Dataset string `json:"dataset"`
	Rows    int    `json:"rows"`
}

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
