package catalog

import (
	"fmt"

	"moodprobe/domain/affect"
	"moodprobe/domain/core"
)

// Catalog is an ordered, immutable registry of states keyed by id.
// Iteration order is the order of the static table; ties in lookups
// resolve to the first match in that order.
type Catalog struct {
	states []State
	byID   map[core.StateID]*State
}

// New builds a catalog from a state table, validating id uniqueness.
func New(states []State) (*Catalog, error) {
	byID := make(map[core.StateID]*State, len(states))
	owned := make([]State, len(states))
	copy(owned, states)
	for i := range owned {
		s := &owned[i]
		if s.ID.String() == "" {
			return nil, core.NewConfigurationError("state catalog", "state with empty id")
		}
		if _, dup := byID[s.ID]; dup {
			return nil, core.NewConfigurationError("state catalog", "duplicate state id "+s.ID.String())
		}
		byID[s.ID] = s
	}
	return &Catalog{states: owned, byID: byID}, nil
}

// Default returns the catalog built from the built-in state table.
// Panics on a malformed table since that is a programming error in
// static data, not a runtime condition.
func Default() *Catalog {
	c, err := New(defaultStates)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of states.
func (c *Catalog) Len() int {
	return len(c.states)
}

// All returns every state in catalog order.
func (c *Catalog) All() []*State {
	out := make([]*State, len(c.states))
	for i := range c.states {
		out[i] = &c.states[i]
	}
	return out
}

// Get returns the state with the given id.
func (c *Catalog) Get(id core.StateID) (*State, error) {
	s, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrStateNotFound, id)
	}
	return s, nil
}

// maxSeparation is the distance at which nearest-state confidence
// bottoms out at zero.
const maxSeparation = 2.0

// Nearest returns the state whose canonical position is closest to
// pos by Euclidean distance, with a confidence of max(0, 1 - d/2).
// Equidistant states resolve to the earlier catalog entry.
func (c *Catalog) Nearest(pos affect.Position) Match {
	best := Match{Distance: -1}
	for i := range c.states {
		s := &c.states[i]
		d := affect.Distance(pos, s.Position)
		if best.State == nil || d < best.Distance {
			best = Match{State: s, Distance: d}
		}
	}
	best.Confidence = 1 - best.Distance/maxSeparation
	if best.Confidence < 0 {
		best.Confidence = 0
	}
	return best
}
