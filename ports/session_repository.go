package ports

import (
	"context"

	"moodprobe/domain/belief"
	"moodprobe/domain/core"
)

// SessionRepository owns live assessment sessions. The engine requires
// a single owner per session id; callers must not drive the same
// session from two goroutines. Implementations may persist however the
// host chooses; the engine itself holds no storage.
type SessionRepository interface {
	// Save stores or replaces a session.
	Save(ctx context.Context, s *belief.Session) error

	// Get retrieves a session by id, or ErrSessionNotFound.
	Get(ctx context.Context, id core.SessionID) (*belief.Session, error)

	// Delete removes a session. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id core.SessionID) error
}
