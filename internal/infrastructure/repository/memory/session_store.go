package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/leaguedesk/leaguedesk/internal/domain/session"
)

// SessionStore keeps onboarding state serialized per session ID. Storing
// the encoded form keeps reads copy-safe and keeps the wire shape honest
// against what a shared session backend would hold.
type SessionStore struct {
	mu     sync.RWMutex
	states map[string][]byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{states: make(map[string][]byte)}
}

func (s *SessionStore) Get(_ context.Context, sessionID string) (session.State, bool, error) {
	s.mu.RLock()
	raw, ok := s.states[sessionID]
	s.mu.RUnlock()
	if !ok {
		return session.State{}, false, nil
	}

	var state session.State
	if err := sonic.Unmarshal(raw, &state); err != nil {
		return session.State{}, false, fmt.Errorf("decode session state: %w", err)
	}

	return state, true, nil
}

func (s *SessionStore) Put(_ context.Context, sessionID string, state session.State) error {
	raw, err := sonic.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	s.mu.Lock()
	s.states[sessionID] = raw
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.states, sessionID)
	s.mu.Unlock()
	return nil
}
