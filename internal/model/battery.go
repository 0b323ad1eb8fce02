package model

import "errors"

// BatteryParams defines the physical parameters of the storage asset.
// Units:
// - CapacityMWh: MWh
// - PowerMW: MW
// - Efficiencies: 0..1
// - MinSOC/MaxSOC: same unit as the simulated state of charge
//
// Note the dispatch heuristic tracks SOC directly against MinSOC/MaxSOC and
// never multiplies by CapacityMWh; the capacity is carried through from the
// request but does not constrain the greedy policy.
type BatteryParams struct {
	CapacityMWh         float64
	PowerMW             float64
	MinSOC              float64
	MaxSOC              float64
	ChargeEfficiency    float64
	DischargeEfficiency float64
}

// DefaultBattery returns the stock parameters used when a request leaves
// them unspecified.
func DefaultBattery() BatteryParams {
	return BatteryParams{
		CapacityMWh:         2.0,
		PowerMW:             1.0,
		MinSOC:              0.10,
		MaxSOC:              0.90,
		ChargeEfficiency:    0.95,
		DischargeEfficiency: 0.95,
	}
}

// Validate checks parameter sanity. Opt-in: the optimize path accepts
// whatever it is given and stays permissive, so callers that want strict
// inputs must invoke this themselves.
func (p BatteryParams) Validate() error {
	if p.CapacityMWh <= 0 {
		return errors.New("CapacityMWh must be > 0")
	}
	if p.PowerMW <= 0 {
		return errors.New("PowerMW must be > 0")
	}
	if p.ChargeEfficiency <= 0 || p.ChargeEfficiency > 1 {
		return errors.New("ChargeEfficiency must be in (0, 1]")
	}
	if p.DischargeEfficiency <= 0 || p.DischargeEfficiency > 1 {
		return errors.New("DischargeEfficiency must be in (0, 1]")
	}
	if p.MinSOC < 0 || p.MaxSOC < 0 || p.MinSOC >= p.MaxSOC {
		return errors.New("MinSOC/MaxSOC must satisfy 0 <= MinSOC < MaxSOC")
	}
	return nil
}
