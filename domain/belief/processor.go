package belief

import (
	"fmt"

	"moodprobe/domain/affect"
	"moodprobe/domain/bank"
	"moodprobe/domain/core"
)

// Processor is the only mutation path into a Session. It applies an
// answered option: position blend, approximate Bayesian update,
// renormalization, history append and metric refresh.
type Processor struct {
	likelihood LikelihoodModel
	evaluator  *Evaluator
}

// NewProcessor creates a processor with the given likelihood model.
func NewProcessor(likelihood LikelihoodModel, evaluator *Evaluator) *Processor {
	return &Processor{likelihood: likelihood, evaluator: evaluator}
}

// Apply records the response to q with the given option value. On an
// InvalidResponse error the session is left unmodified.
func (p *Processor) Apply(s *Session, q *bank.Question, optionValue int) (ConfidenceMetrics, error) {
	if s.Answered()[q.ID] {
		return ConfidenceMetrics{}, core.NewInvalidResponseError(
			fmt.Sprintf("question %s already answered", q.ID))
	}
	opt, ok := q.Option(optionValue)
	if !ok {
		return ConfidenceMetrics{}, core.NewInvalidResponseError(
			fmt.Sprintf("question %s has no option with value %d", q.ID, optionValue))
	}

	entropyBefore := entropyBits(s.Probabilities())

	// Early answers get proportionally larger influence on the
	// position estimate; later ones are smoothly damped.
	weight := 1.0 / float64(len(s.History)+1)
	s.EstimatedPosition = affect.Blend(s.EstimatedPosition, opt.Impact, weight)

	for i := range s.Hypotheses {
		h := &s.Hypotheses[i]
		h.Probability *= p.likelihood.Likelihood(h.StateID, q, opt.Value)
		h.Evidence = append(h.Evidence, opt.Value)
	}
	probs := s.Probabilities()
	renormalize(probs)
	for i := range s.Hypotheses {
		s.Hypotheses[i].Probability = probs[i]
	}

	gain := entropyBefore - entropyBits(probs)
	s.History = append(s.History, HistoryEntry{
		QuestionID:      q.ID,
		ResponseValue:   opt.Value,
		AnsweredAt:      core.Now(),
		InformationGain: gain,
	})

	s.Metrics = p.evaluator.Metrics(s)
	return s.Metrics, nil
}
