package belief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshSessionDoesNotTerminate(t *testing.T) {
	cat, _ := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	e := NewEvaluator()

	assert.False(t, e.ShouldTerminate(s))
}

func TestMaxQuestionsIsAHardCeiling(t *testing.T) {
	cat, b := testFixtures(t)
	criteria := DefaultCriteria()
	criteria.MaxQuestions = 1
	s := NewSession(cat, criteria)
	e := NewEvaluator()
	proc := NewProcessor(NewReferenceLikelihood(), e)

	q := b.All()[0]
	_, err := proc.Apply(s, q, q.Options[0].Value)
	require.NoError(t, err)

	assert.True(t, e.ShouldTerminate(s))
}

func TestMaxQuestionsTerminationIsMonotonic(t *testing.T) {
	cat, b := testFixtures(t)
	criteria := DefaultCriteria()
	criteria.MaxQuestions = 2
	s := NewSession(cat, criteria)
	e := NewEvaluator()
	proc := NewProcessor(NewReferenceLikelihood(), e)

	terminated := false
	for _, q := range b.All() {
		if e.ShouldTerminate(s) {
			terminated = true
		}
		if terminated {
			// Once the budget criterion fires it must stay fired.
			assert.True(t, e.ShouldTerminate(s))
			break
		}
		_, err := proc.Apply(s, q, q.Options[0].Value)
		require.NoError(t, err)
	}
	assert.True(t, terminated)
}

func TestMinConfidenceTerminates(t *testing.T) {
	cat, _ := testFixtures(t)
	criteria := DefaultCriteria()
	criteria.MinConfidence = 0.5
	s := NewSession(cat, criteria)
	e := NewEvaluator()

	// Force a concentrated distribution directly; metrics derive from it.
	for i := range s.Hypotheses {
		s.Hypotheses[i].Probability = 0
	}
	s.Hypotheses[0].Probability = 1
	s.Metrics = e.Metrics(s)

	assert.True(t, e.ShouldTerminate(s))
	assert.Equal(t, 1.0, s.Metrics.Overall)
}

func TestConvergenceRequiresThreeAnswers(t *testing.T) {
	cat, b := testFixtures(t)
	criteria := TerminationCriteria{
		MinConfidence: 0.99,
		MaxQuestions:  100,
		// Everything converges against an impossible threshold.
		ConvergenceThreshold: 10,
	}
	s := NewSession(cat, criteria)
	e := NewEvaluator()
	proc := NewProcessor(NewReferenceLikelihood(), e)

	all := b.All()
	for i := 0; i < 2; i++ {
		_, err := proc.Apply(s, all[i], all[i].Options[0].Value)
		require.NoError(t, err)
		assert.False(t, e.ShouldTerminate(s),
			"diminishing returns must not fire on %d answers", len(s.History))
	}

	_, err := proc.Apply(s, all[2], all[2].Options[0].Value)
	require.NoError(t, err)
	assert.True(t, e.ShouldTerminate(s))
}

func TestMetricsDerivation(t *testing.T) {
	cat, _ := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	e := NewEvaluator()

	m := e.Metrics(s)
	assert.InDelta(t, 1.0/8, m.Overall, 1e-12)
	assert.InDelta(t, 7.0/8, m.PositionalUncertainty, 1e-12)
	assert.Zero(t, m.ConvergenceRate)
	// Uniform over 8 has 3 bits of entropy.
	assert.InDelta(t, 1.0/4, m.StateStability, 1e-12)
}

func TestConvergenceRateUsesLastThreeGains(t *testing.T) {
	cat, _ := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	e := NewEvaluator()

	s.History = []HistoryEntry{
		{InformationGain: 10},
		{InformationGain: 0.3},
		{InformationGain: 0.2},
		{InformationGain: 0.1},
	}
	m := e.Metrics(s)
	assert.InDelta(t, 0.2, m.ConvergenceRate, 1e-12)
}
