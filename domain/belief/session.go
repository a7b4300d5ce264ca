// Package belief implements the per-session probabilistic machinery of
// the assessment engine: the hypothesis distribution, the Bayesian
// response processor, information-gain scoring, termination and final
// state resolution.
package belief

import (
	"moodprobe/domain/affect"
	"moodprobe/domain/catalog"
	"moodprobe/domain/core"
)

// Hypothesis tracks one candidate emotional state and its current
// probability. Evidence records the raw response values that have
// contributed, for traceability only.
type Hypothesis struct {
	StateID     core.StateID `json:"state_id"`
	Probability float64      `json:"probability"`
	Evidence    []int        `json:"evidence,omitempty"`
}

// HistoryEntry is one answered question. History is append-only.
type HistoryEntry struct {
	QuestionID      core.QuestionID `json:"question_id"`
	ResponseValue   int             `json:"response_value"`
	AnsweredAt      core.Timestamp  `json:"answered_at"`
	InformationGain float64         `json:"information_gain"`
}

// ConfidenceMetrics are derived from the distribution and history
// after every response; they are never persisted independently.
type ConfidenceMetrics struct {
	Overall               float64 `json:"overall"`
	PositionalUncertainty float64 `json:"positional_uncertainty"`
	ConvergenceRate       float64 `json:"convergence_rate"`
	StateStability        float64 `json:"state_stability"`
}

// TerminationCriteria are fixed at session creation.
type TerminationCriteria struct {
	MinConfidence        float64 `json:"min_confidence"`
	MaxQuestions         int     `json:"max_questions"`
	ConvergenceThreshold float64 `json:"convergence_threshold"`
}

// DefaultCriteria returns the documented default stopping rule.
func DefaultCriteria() TerminationCriteria {
	return TerminationCriteria{
		MinConfidence:        0.80,
		MaxQuestions:         12,
		ConvergenceThreshold: 0.05,
	}
}

// Session is the mutable belief state of one assessment. Hypotheses
// cover every catalog state in catalog order and their probabilities
// sum to 1 at all times; mutation goes through the Processor only.
type Session struct {
	ID                core.SessionID      `json:"id"`
	Hypotheses        []Hypothesis        `json:"hypotheses"`
	EstimatedPosition affect.Position     `json:"estimated_position"`
	History           []HistoryEntry      `json:"history"`
	Metrics           ConfidenceMetrics   `json:"confidence_metrics"`
	Criteria          TerminationCriteria `json:"termination_criteria"`
	CreatedAt         core.Timestamp      `json:"created_at"`
}

// NewSession creates a session with a uniform distribution over the
// catalog, the estimated position at the origin and an empty history.
func NewSession(cat *catalog.Catalog, criteria TerminationCriteria) *Session {
	states := cat.All()
	uniform := 1.0 / float64(len(states))
	hyps := make([]Hypothesis, len(states))
	for i, s := range states {
		hyps[i] = Hypothesis{StateID: s.ID, Probability: uniform}
	}
	return &Session{
		ID:                core.NewSessionID(),
		Hypotheses:        hyps,
		EstimatedPosition: affect.Origin(),
		Criteria:          criteria,
		CreatedAt:         core.Now(),
		Metrics: ConfidenceMetrics{
			Overall:               uniform,
			PositionalUncertainty: 1 - uniform,
			StateStability:        1 / (1 + entropyBits(uniformVector(len(states)))),
		},
	}
}

// Answered returns the set of question ids already present in history.
func (s *Session) Answered() map[core.QuestionID]bool {
	out := make(map[core.QuestionID]bool, len(s.History))
	for _, h := range s.History {
		out[h.QuestionID] = true
	}
	return out
}

// Probabilities returns the distribution as a vector in catalog order.
func (s *Session) Probabilities() []float64 {
	out := make([]float64, len(s.Hypotheses))
	for i := range s.Hypotheses {
		out[i] = s.Hypotheses[i].Probability
	}
	return out
}

func uniformVector(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0 / float64(n)
	}
	return out
}
