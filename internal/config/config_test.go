package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodprobe/domain/belief"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, belief.DefaultCriteria(), cfg.Assessment.Criteria())
	assert.Equal(t, belief.NewReferenceLikelihood(), cfg.Assessment.Likelihood())
}

func TestLoadEnvOverridesFlowIntoCriteria(t *testing.T) {
	t.Setenv("ASSESS_MIN_CONFIDENCE", "0.9")
	t.Setenv("ASSESS_MAX_QUESTIONS", "6")
	t.Setenv("ASSESS_CONVERGENCE_THRESHOLD", "0.1")

	cfg, err := Load()
	require.NoError(t, err)

	want := belief.TerminationCriteria{
		MinConfidence:        0.9,
		MaxQuestions:         6,
		ConvergenceThreshold: 0.1,
	}
	assert.Equal(t, want, cfg.Assessment.Criteria())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("ASSESS_MIN_CONFIDENCE", "1.5")
	_, err := Load()
	require.Error(t, err)
}
