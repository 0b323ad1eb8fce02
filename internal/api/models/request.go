package models

// OptimizeRequest is the POST /optimize/storage payload. Every field is
// optional; zero values fall back to the server defaults. The battery
// parameters are deliberately not validated for ordering or range — the
// optimizer is permissive by contract.
type OptimizeRequest struct {
	CapacityMWh float64 `json:"capacity_mwh"`
	PowerMW     float64 `json:"power_mw"`
	MinSOC      float64 `json:"min_soc"`
	MaxSOC      float64 `json:"max_soc"`
	EtaIn       float64 `json:"eta_in"`
	EtaOut      float64 `json:"eta_out"`
	Horizon     int     `json:"horizon"`
	Zone        string  `json:"zone"`
}

// ForecastQuery is the GET /forecast/price query string.
type ForecastQuery struct {
	Zone    string `form:"zone"`
	Horizon int    `form:"horizon"`
}

// RankQuery is the GET /rank/zones query string.
type RankQuery struct {
	Horizon int `form:"horizon"`
}
