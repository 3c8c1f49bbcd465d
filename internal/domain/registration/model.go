package registration

import (
	"errors"
	"fmt"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
)

var (
	// ErrRoleNotHeld is returned when a caller removes a role the
	// registration does not hold.
	ErrRoleNotHeld = errors.New("role is not held by this registration")
	// ErrLastRole is returned when removing a role would leave the
	// registration with zero roles. The registration is left untouched.
	ErrLastRole = errors.New("at least one role must remain")
)

// SportRegistration records what roles a user holds for one sport. A user
// registering for two sports has two registrations, each with its own role
// set and completion flag.
type SportRegistration struct {
	ID         string
	UserID     string
	SportID    string
	Roles      role.Set
	IsComplete bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r SportRegistration) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("registration id is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("registration user id is required")
	}
	if r.SportID == "" {
		return fmt.Errorf("registration sport id is required")
	}
	if r.Roles.IsEmpty() {
		return fmt.Errorf("registration must hold at least one role")
	}

	return nil
}

// SetRoles replaces the held roles, or OR-merges them when append is true.
// Together with RemoveRole it is the only legal writer of the role set.
func (r *SportRegistration) SetRoles(names []string, append bool) {
	incoming := role.NewSet(names...)
	if append {
		r.Roles = r.Roles.Union(incoming)
		return
	}
	r.Roles = incoming
}

// RemoveRole strips one role. It fails with ErrRoleNotHeld when the role
// is absent and with ErrLastRole when it is the only role held; in both
// cases the registration is unchanged.
func (r *SportRegistration) RemoveRole(name string) error {
	if !r.Roles.Has(name) {
		return fmt.Errorf("%w: %s", ErrRoleNotHeld, name)
	}

	removed, _ := role.Parse(name)
	remaining := r.Roles.Without(removed)
	if remaining.IsEmpty() {
		return fmt.Errorf("%w: cannot remove %s", ErrLastRole, removed)
	}

	r.SetRoles(remaining.Names(), false)
	return nil
}
