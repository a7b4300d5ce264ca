package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodprobe/domain/affect"
	"moodprobe/domain/core"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()
	assert.Equal(t, 8, cat.Len())

	all := cat.All()
	require.Len(t, all, 8)

	// Order is the static table order, first entry is excited.
	assert.Equal(t, core.StateID("excited"), all[0].ID)

	for _, s := range all {
		assert.NotEmpty(t, s.Name, "state %s missing name", s.ID)
		assert.NotEmpty(t, s.Description, "state %s missing description", s.ID)
		assert.NotEmpty(t, s.Citations, "state %s missing citations", s.ID)
		assert.NotEmpty(t, s.Interventions, "state %s missing interventions", s.ID)
		assert.InDelta(t, s.Position.Valence, affect.Clamp(s.Position).Valence, 0)
		assert.InDelta(t, s.Position.Arousal, affect.Clamp(s.Position).Arousal, 0)
	}
}

func TestCatalogGet(t *testing.T) {
	cat := Default()

	s, err := cat.Get("anxious")
	require.NoError(t, err)
	assert.Equal(t, "Anxious", s.Name)

	_, err = cat.Get("euphoric")
	require.Error(t, err)
	assert.True(t, core.IsNotFoundError(err))
}

func TestCatalogRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]State{{ID: "a", Name: "A"}, {ID: "a", Name: "A again"}})
	require.Error(t, err)
	assert.True(t, core.IsConfigurationError(err))
}

func TestNearestExactMatch(t *testing.T) {
	cat := Default()
	anxious, err := cat.Get("anxious")
	require.NoError(t, err)

	m := cat.Nearest(anxious.Position)
	assert.Equal(t, anxious.ID, m.State.ID)
	assert.Zero(t, m.Distance)
	assert.Equal(t, 1.0, m.Confidence)
}

func TestNearestConfidenceDecaysWithDistance(t *testing.T) {
	cat := Default()

	near := cat.Nearest(affect.Position{Valence: 0.65, Arousal: 0.65})
	far := cat.Nearest(affect.Position{Valence: -1, Arousal: 1})
	assert.Greater(t, near.Confidence, far.Confidence)
	assert.GreaterOrEqual(t, far.Confidence, 0.0)
	assert.LessOrEqual(t, near.Confidence, 1.0)
}

func TestNearestTieBreaksByCatalogOrder(t *testing.T) {
	cat, err := New([]State{
		{ID: "first", Position: affect.Position{Valence: 0.5, Arousal: 0}},
		{ID: "second", Position: affect.Position{Valence: -0.5, Arousal: 0}},
	})
	require.NoError(t, err)

	// Origin is equidistant; the earlier entry wins.
	m := cat.Nearest(affect.Origin())
	assert.Equal(t, core.StateID("first"), m.State.ID)
}
