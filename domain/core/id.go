package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types. StateID and QuestionID are stable strings
// fixed in the static tables; SessionID is generated per assessment.
type (
	SessionID  ID
	StateID    ID
	QuestionID ID
)

// String conversions for domain IDs
func (id SessionID) String() string  { return ID(id).String() }
func (id StateID) String() string    { return ID(id).String() }
func (id QuestionID) String() string { return ID(id).String() }

// NewSessionID generates a fresh session identifier
func NewSessionID() SessionID {
	return SessionID(NewID())
}

// ParseSessionID parses a string into SessionID
func ParseSessionID(s string) (SessionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("session ID cannot be empty")
	}
	return SessionID(s), nil
}

// ParseQuestionID parses a string into QuestionID
func ParseQuestionID(s string) (QuestionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("question ID cannot be empty")
	}
	return QuestionID(s), nil
}
