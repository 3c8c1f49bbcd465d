package roleprofile

import (
	"context"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
)

// ScopeFilter narrows an active-profile query to one scope key. The zero
// value means "any scope", which is what completion checks use; the
// deactivation workflow counts scope-independently too.
type ScopeFilter struct {
	ScopeID string
}

// Repository describes role profile persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, profileID string) (Profile, bool, error)
	ListActive(ctx context.Context, userID, sportID string, r role.Role, filter ScopeFilter) ([]Profile, error)
	Update(ctx context.Context, p Profile) error
}
