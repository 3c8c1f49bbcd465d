package roleprofile

import (
	"fmt"
	"strings"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
)

// Profile is one role-and-scope-specific record, e.g. a coach record tied
// to one team or a referee record tied to one league. A user may hold
// several of the same role across scopes, but at most one active profile
// per (user, role, scope key).
type Profile struct {
	ID        string
	UserID    string
	SportID   string
	Role      role.Role
	ScopeKind role.ScopeKind
	ScopeID   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("role profile id is required")
	}
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("role profile user id is required")
	}
	if strings.TrimSpace(p.SportID) == "" {
		return fmt.Errorf("role profile sport id is required")
	}
	if _, ok := role.Parse(string(p.Role)); !ok {
		return fmt.Errorf("invalid role profile role: %s", p.Role)
	}
	if p.ScopeKind != p.Role.Scope() {
		return fmt.Errorf("role %s requires %s scope, got %s", p.Role, p.Role.Scope(), p.ScopeKind)
	}
	if strings.TrimSpace(p.ScopeID) == "" {
		return fmt.Errorf("role profile scope id is required")
	}

	return nil
}
