package usecase

import (
	"context"
	"fmt"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/roleprofile"
)

// RegistrationResolver answers what a registration is still missing. The
// held-role set is decoded fresh on every call so a role change between
// calls is always observed.
type RegistrationResolver struct {
	registry *RoleRegistry
	profiles roleprofile.Repository
}

func NewRegistrationResolver(registry *RoleRegistry, profiles roleprofile.Repository) *RegistrationResolver {
	return &RegistrationResolver{
		registry: registry,
		profiles: profiles,
	}
}

// RelatedRoleObjects maps every held role to its active profiles. A role
// with no active profile maps to nil.
func (r *RegistrationResolver) RelatedRoleObjects(ctx context.Context, reg registration.SportRegistration) (map[role.Role][]roleprofile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "RegistrationResolver.RelatedRoleObjects")
	defer span.End()

	held := reg.Roles.Roles()
	out := make(map[role.Role][]roleprofile.Profile, len(held))
	for _, rr := range held {
		if _, err := r.registry.Lookup(reg.SportID, rr); err != nil {
			return nil, err
		}

		active, err := r.profiles.ListActive(ctx, reg.UserID, reg.SportID, rr, roleprofile.ScopeFilter{})
		if err != nil {
			return nil, fmt.Errorf("list active %s profiles: %w", rr, err)
		}
		if len(active) == 0 {
			out[rr] = nil
			continue
		}
		out[rr] = active
	}

	return out, nil
}

// NextPendingRole returns the first held role, in canonical order, that
// has no active profile. ok=false means every held role is covered and
// the registration should be marked complete.
func (r *RegistrationResolver) NextPendingRole(ctx context.Context, reg registration.SportRegistration) (role.Role, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "RegistrationResolver.NextPendingRole")
	defer span.End()

	related, err := r.RelatedRoleObjects(ctx, reg)
	if err != nil {
		return "", false, err
	}

	for _, rr := range role.Canonical {
		profiles, held := related[rr]
		if held && profiles == nil {
			return rr, true, nil
		}
	}

	return "", false, nil
}
