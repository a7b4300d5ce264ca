package belief

import (
	"fmt"
	"sort"

	"moodprobe/domain/catalog"
	"moodprobe/domain/core"
)

// maxAlternatives is how many runner-up states a profile carries.
const maxAlternatives = 3

// Alternative is a runner-up state with its final probability.
type Alternative struct {
	State       *catalog.State `json:"state"`
	Probability float64        `json:"probability"`
}

// StateProfile is the read-only outcome of a terminated session.
type StateProfile struct {
	Primary      *catalog.State     `json:"primary"`
	Alternatives []Alternative      `json:"alternatives"`
	Confidence   float64            `json:"confidence"`
	Correlations map[string]float64 `json:"psychometric_correlations"`
	Rationale    string             `json:"scientific_rationale"`
	Suggestions  []string           `json:"evidence_based_suggestions"`
}

// Resolver maps a terminated session's belief state to a final
// profile. Resolution is a pure read and therefore idempotent.
type Resolver struct {
	catalog   *catalog.Catalog
	evaluator *Evaluator
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(cat *catalog.Catalog, evaluator *Evaluator) *Resolver {
	return &Resolver{catalog: cat, evaluator: evaluator}
}

// Resolve requires the session to satisfy its stopping rule; resolving
// earlier is a sequencing error. Equiprobable hypotheses resolve to
// the earlier catalog entry.
func (r *Resolver) Resolve(s *Session) (*StateProfile, error) {
	if !r.evaluator.ShouldTerminate(s) {
		return nil, fmt.Errorf("%w: %d of %d questions answered, confidence %.2f",
			core.ErrSessionNotTerminated, len(s.History), s.Criteria.MaxQuestions, s.Metrics.Overall)
	}
	return r.profile(s)
}

// ResolveExhausted resolves a session whose question bank ran out
// before any stopping criterion fired. Exhaustion is forced
// termination: no discriminating question remains, so resolution
// proceeds from whatever belief has accumulated.
func (r *Resolver) ResolveExhausted(s *Session) (*StateProfile, error) {
	return r.profile(s)
}

func (r *Resolver) profile(s *Session) (*StateProfile, error) {
	primaryIdx := 0
	for i := range s.Hypotheses {
		if s.Hypotheses[i].Probability > s.Hypotheses[primaryIdx].Probability {
			primaryIdx = i
		}
	}
	primaryHyp := s.Hypotheses[primaryIdx]
	primary, err := r.catalog.Get(primaryHyp.StateID)
	if err != nil {
		return nil, err
	}

	ranked := make([]Hypothesis, 0, len(s.Hypotheses)-1)
	for i := range s.Hypotheses {
		if i != primaryIdx {
			ranked = append(ranked, s.Hypotheses[i])
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Probability > ranked[j].Probability
	})
	if len(ranked) > maxAlternatives {
		ranked = ranked[:maxAlternatives]
	}
	alternatives := make([]Alternative, 0, len(ranked))
	for _, h := range ranked {
		st, err := r.catalog.Get(h.StateID)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, Alternative{State: st, Probability: h.Probability})
	}

	return &StateProfile{
		Primary:      primary,
		Alternatives: alternatives,
		Confidence:   primaryHyp.Probability,
		Correlations: primary.Correlations,
		Rationale:    r.rationale(s, primary, primaryHyp.Probability),
		Suggestions:  primary.Interventions,
	}, nil
}

func (r *Resolver) rationale(s *Session, primary *catalog.State, confidence float64) string {
	citation := "no citation on record"
	if len(primary.Citations) > 0 {
		citation = primary.Citations[0]
	}
	nearest := r.catalog.Nearest(s.EstimatedPosition)
	return fmt.Sprintf(
		"After %d responses the estimated affective position (valence %.2f, arousal %.2f) "+
			"is best explained by %q (probability %.2f). Position-nearest catalog state: "+
			"%s at distance %.2f (positional confidence %.2f). Reference: %s",
		len(s.History),
		s.EstimatedPosition.Valence, s.EstimatedPosition.Arousal,
		primary.Name, confidence,
		nearest.State.Name, nearest.Distance, nearest.Confidence,
		citation)
}
