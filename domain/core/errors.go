package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrStateNotFound    = fmt.Errorf("%w: emotional state", ErrNotFound)
	ErrQuestionNotFound = fmt.Errorf("%w: question", ErrNotFound)
	ErrSessionNotFound  = fmt.Errorf("%w: session", ErrNotFound)

	// Configuration errors (fatal, load time only)
	ErrConfiguration = errors.New("invalid static configuration")

	// Caller errors
	ErrInvalidResponse = errors.New("invalid response")

	// Sequencing errors
	ErrSessionNotTerminated = errors.New("session not terminated")
	ErrSessionTerminated    = errors.New("session already terminated")
)

// Error constructors with context
func NewConfigurationError(subject string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrConfiguration, subject, reason)
}

func NewInvalidResponseError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidResponse, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func IsInvalidResponseError(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}

func IsSequencingError(err error) bool {
	return errors.Is(err, ErrSessionNotTerminated) ||
		errors.Is(err, ErrSessionTerminated)
}
