package session

import "context"

// Store persists per-session onboarding state. Keys are opaque session
// IDs; a session's state is never shared or merged across sessions, so
// implementations only need per-key consistency.
type Store interface {
	Get(ctx context.Context, sessionID string) (State, bool, error)
	Put(ctx context.Context, sessionID string, state State) error
	Delete(ctx context.Context, sessionID string) error
}
