package belief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodprobe/domain/core"
)

func TestResolveRequiresTermination(t *testing.T) {
	cat, _ := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	r := NewResolver(cat, NewEvaluator())

	_, err := r.Resolve(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSessionNotTerminated)
}

func terminatedSession(t *testing.T) (*Session, *Resolver) {
	t.Helper()
	cat, b := testFixtures(t)
	criteria := DefaultCriteria()
	criteria.MaxQuestions = 3
	s := NewSession(cat, criteria)
	e := NewEvaluator()
	proc := NewProcessor(NewReferenceLikelihood(), e)

	for _, id := range []core.QuestionID{"q-racing-thoughts", "q-body-tension", "q-upcoming-worry"} {
		q, err := b.Get(id)
		require.NoError(t, err)
		_, err = proc.Apply(s, q, q.Options[len(q.Options)-1].Value)
		require.NoError(t, err)
	}
	require.True(t, e.ShouldTerminate(s))
	return s, NewResolver(cat, e)
}

func TestResolvePicksMostProbableHypothesis(t *testing.T) {
	s, r := terminatedSession(t)

	profile, err := r.Resolve(s)
	require.NoError(t, err)

	// All three answered questions discriminate anxiety.
	assert.Equal(t, core.StateID("anxious"), profile.Primary.ID)

	best := 0.0
	for _, h := range s.Hypotheses {
		if h.Probability > best {
			best = h.Probability
		}
	}
	assert.Equal(t, best, profile.Confidence)
}

func TestResolveRanksAlternatives(t *testing.T) {
	s, r := terminatedSession(t)

	profile, err := r.Resolve(s)
	require.NoError(t, err)
	require.Len(t, profile.Alternatives, 3)

	assert.LessOrEqual(t, profile.Alternatives[0].Probability, profile.Confidence)
	for i := 1; i < len(profile.Alternatives); i++ {
		assert.LessOrEqual(t, profile.Alternatives[i].Probability, profile.Alternatives[i-1].Probability)
	}
	for _, alt := range profile.Alternatives {
		assert.NotEqual(t, profile.Primary.ID, alt.State.ID)
	}
}

func TestResolveCarriesStateMetadata(t *testing.T) {
	s, r := terminatedSession(t)

	profile, err := r.Resolve(s)
	require.NoError(t, err)

	assert.Equal(t, profile.Primary.Interventions, profile.Suggestions)
	assert.Equal(t, profile.Primary.Correlations, profile.Correlations)
	assert.Contains(t, profile.Rationale, profile.Primary.Name)
	assert.Contains(t, profile.Rationale, profile.Primary.Citations[0])
}

func TestResolveIsIdempotent(t *testing.T) {
	s, r := terminatedSession(t)

	first, err := r.Resolve(s)
	require.NoError(t, err)
	second, err := r.Resolve(s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Resolution never mutates the distribution.
	assert.InDelta(t, first.Confidence, second.Confidence, 0)
}

func TestResolveExhaustedSkipsStoppingRule(t *testing.T) {
	cat, _ := testFixtures(t)
	s := NewSession(cat, DefaultCriteria())
	r := NewResolver(cat, NewEvaluator())

	// The stopping rule is not met, but a caller that has run out of
	// questions can still force resolution.
	_, err := r.Resolve(s)
	require.ErrorIs(t, err, core.ErrSessionNotTerminated)

	profile, err := r.ResolveExhausted(s)
	require.NoError(t, err)
	assert.Equal(t, cat.All()[0].ID, profile.Primary.ID)
}

func TestResolveTieBreaksByCatalogOrder(t *testing.T) {
	cat, _ := testFixtures(t)
	criteria := DefaultCriteria()
	criteria.MaxQuestions = 0 // immediately terminated, still uniform
	s := NewSession(cat, criteria)
	r := NewResolver(cat, NewEvaluator())

	profile, err := r.Resolve(s)
	require.NoError(t, err)
	// All hypotheses equiprobable: the first catalog entry wins.
	assert.Equal(t, cat.All()[0].ID, profile.Primary.ID)
}
