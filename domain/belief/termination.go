package belief

import (
	"github.com/montanaflynn/stats"
)

// minConvergenceHistory is the number of answers required before the
// diminishing-returns criterion may fire, so the convergence rate is
// not judged on noise.
const minConvergenceHistory = 3

// Evaluator derives confidence metrics and decides when a session has
// gathered enough evidence to stop.
type Evaluator struct{}

// NewEvaluator creates a termination evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Metrics recomputes the derived confidence metrics from the current
// distribution and history.
func (e *Evaluator) Metrics(s *Session) ConfidenceMetrics {
	probs := s.Probabilities()

	overall, _ := stats.Max(probs)

	complements := make([]float64, len(probs))
	for i, p := range probs {
		complements[i] = 1 - p
	}
	uncertainty, _ := stats.Mean(complements)

	rate := 0.0
	if n := len(s.History); n > 0 {
		start := n - minConvergenceHistory
		if start < 0 {
			start = 0
		}
		gains := make([]float64, 0, minConvergenceHistory)
		for _, h := range s.History[start:] {
			gains = append(gains, h.InformationGain)
		}
		rate, _ = stats.Mean(gains)
	}

	return ConfidenceMetrics{
		Overall:               overall,
		PositionalUncertainty: uncertainty,
		ConvergenceRate:       rate,
		StateStability:        1 / (1 + entropyBits(probs)),
	}
}

// ShouldTerminate reports whether any stopping criterion is met:
// sufficient confidence, the hard question budget, or diminishing
// returns after at least three answers.
func (e *Evaluator) ShouldTerminate(s *Session) bool {
	if len(s.History) >= s.Criteria.MaxQuestions {
		return true
	}
	if s.Metrics.Overall >= s.Criteria.MinConfidence {
		return true
	}
	if len(s.History) >= minConvergenceHistory &&
		s.Metrics.ConvergenceRate < s.Criteria.ConvergenceThreshold {
		return true
	}
	return false
}
