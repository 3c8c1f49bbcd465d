package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
)

// ErrRegistryMisconfigured marks a deployment defect: a registration
// references a sport with no role binding table. It is never retried and
// never shown to users beyond a generic failure.
var ErrRegistryMisconfigured = errors.New("role registry misconfigured")

// RoleBinding describes how one role is set up within one sport: the
// scope its profiles attach to and the key used to build setup paths.
type RoleBinding struct {
	Role       role.Role
	Scope      role.ScopeKind
	RoutingKey string
}

// RoleRegistry is the startup-built (sport, role) binding table. It is
// immutable after construction; lookups are read-only and safe for
// concurrent use.
type RoleRegistry struct {
	bindings map[string]map[role.Role]RoleBinding
}

// BuildRoleRegistry constructs bindings for every configured sport and
// validates them eagerly. A sport missing a binding for any vocabulary
// role fails construction; callers treat that as fatal at boot.
func BuildRoleRegistry(ctx context.Context, sports sport.Repository) (*RoleRegistry, error) {
	configured, err := sports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	r := &RoleRegistry{bindings: make(map[string]map[role.Role]RoleBinding, len(configured))}
	for _, s := range configured {
		table := make(map[role.Role]RoleBinding, len(role.Canonical))
		for _, rr := range role.Canonical {
			table[rr] = RoleBinding{
				Role:       rr,
				Scope:      rr.Scope(),
				RoutingKey: rr.RoutingKey(),
			}
		}
		r.bindings[s.ID] = table
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RoleRegistry) Validate() error {
	for sportID, table := range r.bindings {
		for _, rr := range role.Canonical {
			b, ok := table[rr]
			if !ok {
				return fmt.Errorf("%w: sport %s has no binding for role %s", ErrRegistryMisconfigured, sportID, rr)
			}
			if b.Scope != rr.Scope() {
				return fmt.Errorf("%w: sport %s binds role %s to %s scope, want %s", ErrRegistryMisconfigured, sportID, rr, b.Scope, rr.Scope())
			}
		}
	}
	return nil
}

// Lookup resolves the binding for one (sport, role) pair. An unknown
// sport is a configuration defect, not a user error.
func (r *RoleRegistry) Lookup(sportID string, rr role.Role) (RoleBinding, error) {
	table, ok := r.bindings[sportID]
	if !ok {
		return RoleBinding{}, fmt.Errorf("%w: sport %s is not configured", ErrRegistryMisconfigured, sportID)
	}
	b, ok := table[rr]
	if !ok {
		return RoleBinding{}, fmt.Errorf("%w: sport %s has no binding for role %s", ErrRegistryMisconfigured, sportID, rr)
	}
	return b, nil
}

func (r *RoleRegistry) HasSport(sportID string) bool {
	_, ok := r.bindings[sportID]
	return ok
}

func isRegistryMisconfigured(err error) bool {
	return errors.Is(err, ErrRegistryMisconfigured)
}
