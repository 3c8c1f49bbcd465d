package role

import "strings"

// Role is one of the fixed capabilities a user can hold within a sport.
type Role string

const (
	Player      Role = "Player"
	Coach       Role = "Coach"
	Referee     Role = "Referee"
	Manager     Role = "Manager"
	Scorekeeper Role = "Scorekeeper"
)

// Canonical holds the role vocabulary in its canonical order. The order is
// fixed for the lifetime of the system: bit i of a mask always refers to
// Canonical[i]. New roles may only be appended.
var Canonical = []Role{Player, Coach, Referee, Manager, Scorekeeper}

// ScopeKind describes what a role-specific profile is attached to.
type ScopeKind string

const (
	ScopeTeam   ScopeKind = "team"
	ScopeLeague ScopeKind = "league"
	ScopeSport  ScopeKind = "sport"
)

// Scope returns the scope kind a profile for this role is keyed by.
func (r Role) Scope() ScopeKind {
	switch r {
	case Referee:
		return ScopeLeague
	case Scorekeeper:
		return ScopeSport
	default:
		return ScopeTeam
	}
}

// Parse resolves a role name case-insensitively. Unknown names return
// false rather than an error so callers can decide whether to drop or
// reject them.
func Parse(name string) (Role, bool) {
	trimmed := strings.TrimSpace(name)
	for _, r := range Canonical {
		if strings.EqualFold(trimmed, string(r)) {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}

// RoutingKey is the lowercase identifier used in setup-page paths.
func (r Role) RoutingKey() string {
	return strings.ToLower(string(r))
}
