package session

import "time"

// PendingStep is one queued setup step for a registration that is not the
// one currently being routed.
type PendingStep struct {
	RegistrationID string `json:"registration_id"`
	Role           string `json:"role"`
}

// State is the onboarding state attached to one authenticated session. It
// is recomputed by the routing gate on every request and has no identity
// beyond the session that owns it.
type State struct {
	IsCurrentlyRegistering bool          `json:"is_currently_registering"`
	PendingQueue           []PendingStep `json:"pending_queue,omitempty"`
	GrantedRoles           []string      `json:"granted_roles,omitempty"`
	UpdatedAt              time.Time     `json:"updated_at"`
}

// Clone returns a deep copy so callers can mutate without aliasing the
// stored value.
func (s State) Clone() State {
	out := s
	out.PendingQueue = append([]PendingStep(nil), s.PendingQueue...)
	out.GrantedRoles = append([]string(nil), s.GrantedRoles...)
	return out
}
