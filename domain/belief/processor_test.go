package belief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodprobe/domain/affect"
	"moodprobe/domain/core"
	"gonum.org/v1/gonum/floats"
)

func TestApplyKeepsProbabilitySumInvariant(t *testing.T) {
	cat, b := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	proc := NewProcessor(NewReferenceLikelihood(), NewEvaluator())

	assert.InDelta(t, 1.0, floats.Sum(s.Probabilities()), 1e-9)

	for _, q := range b.All() {
		_, err := proc.Apply(s, q, q.Options[len(q.Options)-1].Value)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, floats.Sum(s.Probabilities()), 1e-9,
			"sum invariant broken after %s", q.ID)
	}
}

func TestApplyKeepsPositionInBounds(t *testing.T) {
	cat, b := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	proc := NewProcessor(NewReferenceLikelihood(), NewEvaluator())

	for _, q := range b.All() {
		// Always pick the most extreme option available.
		_, err := proc.Apply(s, q, q.Options[len(q.Options)-1].Value)
		require.NoError(t, err)
		p := s.EstimatedPosition
		assert.GreaterOrEqual(t, p.Valence, -affect.Bound)
		assert.LessOrEqual(t, p.Valence, affect.Bound)
		assert.GreaterOrEqual(t, p.Arousal, -affect.Bound)
		assert.LessOrEqual(t, p.Arousal, affect.Bound)
	}
}

func TestApplyFavorsDiscriminatedStates(t *testing.T) {
	cat, b := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	proc := NewProcessor(NewReferenceLikelihood(), NewEvaluator())

	q, err := b.Get("q-racing-thoughts")
	require.NoError(t, err)

	_, err = proc.Apply(s, q, 5)
	require.NoError(t, err)

	var discriminated, neutral float64
	for _, h := range s.Hypotheses {
		if q.Discriminates(h.StateID) {
			discriminated = h.Probability
		} else {
			neutral = h.Probability
		}
	}
	assert.Greater(t, discriminated, neutral)
}

func TestApplyRecordsHistoryAndEvidence(t *testing.T) {
	cat, b := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	proc := NewProcessor(NewReferenceLikelihood(), NewEvaluator())

	q := b.All()[0]
	metrics, err := proc.Apply(s, q, q.Options[0].Value)
	require.NoError(t, err)

	require.Len(t, s.History, 1)
	entry := s.History[0]
	assert.Equal(t, q.ID, entry.QuestionID)
	assert.Equal(t, q.Options[0].Value, entry.ResponseValue)
	assert.Greater(t, entry.InformationGain, 0.0)
	assert.False(t, entry.AnsweredAt.IsZero())

	for _, h := range s.Hypotheses {
		assert.Equal(t, []int{q.Options[0].Value}, h.Evidence)
	}

	assert.Equal(t, s.Metrics, metrics)
	assert.Greater(t, metrics.Overall, 1.0/8)
}

func TestApplyRejectsDuplicateAnswer(t *testing.T) {
	cat, b := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	proc := NewProcessor(NewReferenceLikelihood(), NewEvaluator())

	q := b.All()[0]
	_, err := proc.Apply(s, q, q.Options[0].Value)
	require.NoError(t, err)

	snapshot := s.Probabilities()
	_, err = proc.Apply(s, q, q.Options[1].Value)
	require.Error(t, err)
	assert.True(t, core.IsInvalidResponseError(err))
	assert.Equal(t, snapshot, s.Probabilities())
	assert.Len(t, s.History, 1)
}

func TestApplyRejectsUnknownOptionValueWithoutMutation(t *testing.T) {
	cat, b := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	proc := NewProcessor(NewReferenceLikelihood(), NewEvaluator())

	q := b.All()[0]
	before := s.Probabilities()
	pos := s.EstimatedPosition

	_, err := proc.Apply(s, q, 42)
	require.Error(t, err)
	assert.True(t, core.IsInvalidResponseError(err))
	assert.Equal(t, before, s.Probabilities())
	assert.Equal(t, pos, s.EstimatedPosition)
	assert.Empty(t, s.History)
}

func TestEarlyAnswersMoveThePositionMore(t *testing.T) {
	cat, b := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	proc := NewProcessor(NewReferenceLikelihood(), NewEvaluator())

	all := b.All()
	q1, q2 := all[0], all[1]
	opt1 := q1.Options[len(q1.Options)-1]
	opt2 := q2.Options[len(q2.Options)-1]

	start := s.EstimatedPosition
	_, err := proc.Apply(s, q1, opt1.Value)
	require.NoError(t, err)
	firstShift := affect.Distance(start, s.EstimatedPosition)

	mid := s.EstimatedPosition
	_, err = proc.Apply(s, q2, opt2.Value)
	require.NoError(t, err)
	secondShift := affect.Distance(mid, s.EstimatedPosition)

	// Weight halves on the second answer; with comparable impacts the
	// second shift must be smaller.
	assert.Less(t, secondShift, firstShift)
}
