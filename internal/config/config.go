package config

import (
	"os"
	"strconv"

	"moodprobe/domain/belief"
	"moodprobe/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Assessment AssessmentConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// AssessmentConfig holds engine tuning knobs. The termination defaults
// and likelihood constants are overridable pending real calibration
// data.
type AssessmentConfig struct {
	MinConfidence          float64
	MaxQuestions           int
	ConvergenceThreshold   float64
	LikelihoodDiscriminant float64
	LikelihoodNeutral      float64
}

// Criteria converts the configured termination settings.
func (c AssessmentConfig) Criteria() belief.TerminationCriteria {
	return belief.TerminationCriteria{
		MinConfidence:        c.MinConfidence,
		MaxQuestions:         c.MaxQuestions,
		ConvergenceThreshold: c.ConvergenceThreshold,
	}
}

// Likelihood converts the configured likelihood constants.
func (c AssessmentConfig) Likelihood() belief.ReferenceLikelihood {
	return belief.ReferenceLikelihood{
		Discriminant: c.LikelihoodDiscriminant,
		Neutral:      c.LikelihoodNeutral,
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	defaults := belief.DefaultCriteria()
	reference := belief.NewReferenceLikelihood()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Assessment: AssessmentConfig{
			MinConfidence:          getEnvFloat("ASSESS_MIN_CONFIDENCE", defaults.MinConfidence),
			MaxQuestions:           getEnvInt("ASSESS_MAX_QUESTIONS", defaults.MaxQuestions),
			ConvergenceThreshold:   getEnvFloat("ASSESS_CONVERGENCE_THRESHOLD", defaults.ConvergenceThreshold),
			LikelihoodDiscriminant: getEnvFloat("ASSESS_LIKELIHOOD_DISCRIMINANT", reference.Discriminant),
			LikelihoodNeutral:      getEnvFloat("ASSESS_LIKELIHOOD_NEUTRAL", reference.Neutral),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	a := c.Assessment
	if a.MinConfidence <= 0 || a.MinConfidence > 1 {
		return errors.New(errors.CodeConfiguration, "ASSESS_MIN_CONFIDENCE must be in (0,1]")
	}
	if a.MaxQuestions < 1 {
		return errors.New(errors.CodeConfiguration, "ASSESS_MAX_QUESTIONS must be at least 1")
	}
	if a.ConvergenceThreshold < 0 {
		return errors.New(errors.CodeConfiguration, "ASSESS_CONVERGENCE_THRESHOLD must be non-negative")
	}
	if a.LikelihoodDiscriminant <= 0 || a.LikelihoodNeutral <= 0 {
		return errors.New(errors.CodeConfiguration, "likelihood constants must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
