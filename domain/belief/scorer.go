package belief

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"moodprobe/domain/bank"
)

// entropyBits returns the Shannon entropy of a distribution in bits.
// Zero-probability terms contribute nothing.
func entropyBits(p []float64) float64 {
	return stat.Entropy(p) / math.Ln2
}

// project returns the renormalized distribution that would result from
// applying the given option, without touching the session. Shares the
// likelihood and renormalization semantics of Processor.Apply.
func project(s *Session, q *bank.Question, value int, m LikelihoodModel) []float64 {
	out := make([]float64, len(s.Hypotheses))
	for i := range s.Hypotheses {
		out[i] = s.Hypotheses[i].Probability * m.Likelihood(s.Hypotheses[i].StateID, q, value)
	}
	renormalize(out)
	return out
}

// renormalize scales the vector to sum to 1 in place, resetting to a
// uniform distribution when the sum has degenerated to zero.
func renormalize(p []float64) {
	sum := floats.Sum(p)
	if sum <= 0 {
		copy(p, uniformVector(len(p)))
		return
	}
	floats.Scale(1/sum, p)
}

// Scorer computes the expected information gain of candidate questions
// against the current belief state.
type Scorer struct {
	likelihood LikelihoodModel
	response   ResponseModel
}

// NewScorer creates a scorer with the given models.
func NewScorer(likelihood LikelihoodModel, response ResponseModel) *Scorer {
	return &Scorer{likelihood: likelihood, response: response}
}

// ExpectedInformation returns the response-probability-weighted entropy
// reduction of asking the question, scaled by its information weight so
// psychometrically weaker questions rank lower even when locally
// informative. Pure; the session is not mutated.
func (sc *Scorer) ExpectedInformation(s *Session, q *bank.Question) float64 {
	current := entropyBits(s.Probabilities())
	total := 0.0
	for i := range q.Options {
		opt := &q.Options[i]
		projected := project(s, q, opt.Value, sc.likelihood)
		gain := current - entropyBits(projected)
		total += sc.response.ResponseProbability(q, opt) * gain
	}
	return total * q.InformationWeight
}

// SelectNext returns the unanswered question with the highest expected
// information, or nil when the bank is exhausted. Exhaustion is a
// normal terminal condition, not an error; ties keep bank order.
func (sc *Scorer) SelectNext(s *Session, b *bank.Bank) *bank.Question {
	var best *bank.Question
	bestScore := math.Inf(-1)
	for _, q := range b.Unanswered(s.Answered()) {
		if score := sc.ExpectedInformation(s, q); score > bestScore {
			best, bestScore = q, score
		}
	}
	return best
}
