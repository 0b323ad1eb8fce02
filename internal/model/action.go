package model

import "time"

// ActionKind is the operating mode chosen for a timestep.
// Keep these values stable; they go straight into API responses and CSVs.
type ActionKind string

const (
	ActionCharge    ActionKind = "charge"
	ActionDischarge ActionKind = "discharge"
)

// DispatchAction is one timestep where the battery acts. Steps with no
// action are simply absent from the sequence.
type DispatchAction struct {
	Index   int
	Kind    ActionKind
	PowerMW float64
	Price   float64
}

// ActionWindow collapses a maximal run of consecutive same-kind dispatch
// actions into one summary record. Derived transiently per optimization
// call, never persisted.
type ActionWindow struct {
	Kind  ActionKind
	Start time.Time
	End   time.Time
	AvgMW float64
}
