package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/leaguedesk/leaguedesk/internal/domain/session"
)

// SessionStore keeps onboarding state as one JSON document per session,
// upserted on every gate pass.
type SessionStore struct {
	db *sqlx.DB
}

func NewSessionStore(db *sqlx.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (session.State, bool, error) {
	const query = `SELECT state FROM onboarding_sessions WHERE session_id = $1`

	var raw []byte
	if err := sqlx.GetContext(ctx, executor(ctx, s.db), &raw, query, sessionID); err != nil {
		if isNotFound(err) {
			return session.State{}, false, nil
		}
		return session.State{}, false, fmt.Errorf("get session state: %w", err)
	}

	var state session.State
	if err := sonic.Unmarshal(raw, &state); err != nil {
		return session.State{}, false, fmt.Errorf("decode session state: %w", err)
	}
	return state, true, nil
}

func (s *SessionStore) Put(ctx context.Context, sessionID string, state session.State) error {
	raw, err := sonic.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	const query = `
INSERT INTO onboarding_sessions (session_id, state, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (session_id) DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()`

	if _, err := executor(ctx, s.db).ExecContext(ctx, query, sessionID, raw); err != nil {
		return fmt.Errorf("put session state: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM onboarding_sessions WHERE session_id = $1`

	if _, err := executor(ctx, s.db).ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}
