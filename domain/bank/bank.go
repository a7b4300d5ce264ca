package bank

import (
	"fmt"

	"moodprobe/domain/catalog"
	"moodprobe/domain/core"
)

// Bank is the ordered, immutable question list. Selection preserves
// bank order when scores tie.
type Bank struct {
	questions []Question
	byID      map[core.QuestionID]*Question
}

// New builds a bank and statically validates every entry against the
// catalog: unique option values, information weight in (0,1], and no
// dangling discriminant state ids. A violation is a fatal
// configuration error.
func New(questions []Question, cat *catalog.Catalog) (*Bank, error) {
	byID := make(map[core.QuestionID]*Question, len(questions))
	owned := make([]Question, len(questions))
	copy(owned, questions)
	for i := range owned {
		q := &owned[i]
		if q.ID.String() == "" {
			return nil, core.NewConfigurationError("question bank", "question with empty id")
		}
		if _, dup := byID[q.ID]; dup {
			return nil, core.NewConfigurationError("question bank", "duplicate question id "+q.ID.String())
		}
		if q.InformationWeight <= 0 || q.InformationWeight > 1 {
			return nil, core.NewConfigurationError("question bank",
				fmt.Sprintf("question %s: information weight %.3f outside (0,1]", q.ID, q.InformationWeight))
		}
		if len(q.Options) == 0 {
			return nil, core.NewConfigurationError("question bank", "question "+q.ID.String()+" has no options")
		}
		seen := make(map[int]bool, len(q.Options))
		for _, opt := range q.Options {
			if seen[opt.Value] {
				return nil, core.NewConfigurationError("question bank",
					fmt.Sprintf("question %s: duplicate option value %d", q.ID, opt.Value))
			}
			seen[opt.Value] = true
		}
		for _, sid := range q.DiscriminantStates {
			if _, err := cat.Get(sid); err != nil {
				return nil, core.NewConfigurationError("question bank",
					fmt.Sprintf("question %s: unknown discriminant state %s", q.ID, sid))
			}
		}
		byID[q.ID] = q
	}
	return &Bank{questions: owned, byID: byID}, nil
}

// Default returns the bank built from the built-in question table,
// validated against the given catalog.
func Default(cat *catalog.Catalog) (*Bank, error) {
	return New(defaultQuestions, cat)
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns every question in bank order.
func (b *Bank) All() []*Question {
	out := make([]*Question, len(b.questions))
	for i := range b.questions {
		out[i] = &b.questions[i]
	}
	return out
}

// Get returns the question with the given id.
func (b *Bank) Get(id core.QuestionID) (*Question, error) {
	q, ok := b.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrQuestionNotFound, id)
	}
	return q, nil
}

// Unanswered returns the questions whose ids do not appear in the
// given answered set, preserving bank order.
func (b *Bank) Unanswered(answered map[core.QuestionID]bool) []*Question {
	out := make([]*Question, 0, len(b.questions))
	for i := range b.questions {
		q := &b.questions[i]
		if !answered[q.ID] {
			out = append(out, q)
		}
	}
	return out
}
