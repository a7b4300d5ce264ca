// Package bank holds the validated question bank the engine selects
// from. Like the state catalog it is built once at startup and
// read-only afterwards.
package bank

import (
	"moodprobe/domain/affect"
	"moodprobe/domain/core"
)

// QuestionType is a bookkeeping category; it never drives branching.
type QuestionType string

const (
	Behavioral    QuestionType = "behavioral"
	Cognitive     QuestionType = "cognitive"
	Physiological QuestionType = "physiological"
	Social        QuestionType = "social"
	Temporal      QuestionType = "temporal"
)

// Option is one Likert answer for a question. Value is unique within
// the question; Impact is the displacement the answer applies to the
// session's estimated position.
type Option struct {
	Value  int             `json:"value"`
	Label  string          `json:"label"`
	Impact affect.Position `json:"impact"`
}

// Question is a validated bank entry. DiscriminantStates lists the
// catalog states this question is designed to separate;
// InformationWeight in (0,1] is its fixed psychometric quality
// coefficient.
type Question struct {
	ID                 core.QuestionID `json:"id"`
	Text               string          `json:"text"`
	Type               QuestionType    `json:"type"`
	DiscriminantStates []core.StateID  `json:"discriminant_states"`
	InformationWeight  float64         `json:"information_weight"`
	Options            []Option        `json:"options"`
}

// Option returns the option with the given value, if present.
func (q *Question) Option(value int) (*Option, bool) {
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i], true
		}
	}
	return nil, false
}

// Discriminates reports whether the question targets the given state.
func (q *Question) Discriminates(id core.StateID) bool {
	for _, s := range q.DiscriminantStates {
		if s == id {
			return true
		}
	}
	return false
}
