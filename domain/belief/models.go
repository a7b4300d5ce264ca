package belief

import (
	"moodprobe/domain/bank"
	"moodprobe/domain/core"
)

// LikelihoodModel scores how strongly a response to a question supports
// a candidate state. Injectable so the placeholder constants can be
// replaced by an empirically calibrated model without touching the
// update or termination logic.
type LikelihoodModel interface {
	Likelihood(state core.StateID, question *bank.Question, responseValue int) float64
}

// ResponseModel estimates how likely each option of a question is to be
// chosen, used to weight expected information gain.
type ResponseModel interface {
	ResponseProbability(question *bank.Question, option *bank.Option) float64
}

// ReferenceLikelihood is the uncalibrated default: a flat boost for
// states the question is designed to discriminate, a neutral factor
// otherwise. The response value is ignored.
type ReferenceLikelihood struct {
	Discriminant float64
	Neutral      float64
}

// NewReferenceLikelihood returns the default constants.
func NewReferenceLikelihood() ReferenceLikelihood {
	return ReferenceLikelihood{Discriminant: 0.8, Neutral: 0.5}
}

func (m ReferenceLikelihood) Likelihood(state core.StateID, question *bank.Question, responseValue int) float64 {
	if question.Discriminates(state) {
		return m.Discriminant
	}
	return m.Neutral
}

// UniformResponse assumes every option of a question is equally likely.
type UniformResponse struct{}

func (UniformResponse) ResponseProbability(question *bank.Question, option *bank.Option) float64 {
	return 1.0 / float64(len(question.Options))
}
