// Package catalog holds the fixed registry of emotional states the
// engine can resolve to. Entries are built once at startup from a
// static table and shared read-only across sessions.
package catalog

import (
	"moodprobe/domain/affect"
	"moodprobe/domain/core"
)

// State is a named emotional state with a canonical position in
// affective space and the descriptive metadata carried into the final
// profile. Never mutated after load.
type State struct {
	ID              core.StateID       `json:"id"`
	Name            string             `json:"name"`
	Position        affect.Position    `json:"position"`
	Description     string             `json:"description"`
	Characteristics []string           `json:"characteristics"`
	Interventions   []string           `json:"interventions"`
	Citations       []string           `json:"citations"`
	Correlations    map[string]float64 `json:"correlations"`
}

// Match is the result of a nearest-state lookup.
type Match struct {
	State      *State
	Distance   float64
	Confidence float64
}
