package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/roleprofile"
)

type RoleProfileRepository struct {
	mu     sync.RWMutex
	items  map[string]roleprofile.Profile
	orders []string
}

func NewRoleProfileRepository() *RoleProfileRepository {
	return &RoleProfileRepository{
		items: make(map[string]roleprofile.Profile),
	}
}

func (r *RoleProfileRepository) Create(_ context.Context, p roleprofile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[p.ID]; exists {
		return fmt.Errorf("role profile %s already exists", p.ID)
	}

	r.items[p.ID] = p
	r.orders = append(r.orders, p.ID)
	return nil
}

func (r *RoleProfileRepository) GetByID(_ context.Context, profileID string) (roleprofile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[profileID]
	if !ok {
		return roleprofile.Profile{}, false, nil
	}

	return p, true, nil
}

func (r *RoleProfileRepository) ListActive(_ context.Context, userID, sportID string, rr role.Role, filter roleprofile.ScopeFilter) ([]roleprofile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roleprofile.Profile, 0)
	for _, id := range r.orders {
		p := r.items[id]
		if !p.IsActive || p.UserID != userID || p.SportID != sportID || p.Role != rr {
			continue
		}
		if filter.ScopeID != "" && p.ScopeID != filter.ScopeID {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *RoleProfileRepository) Update(_ context.Context, p roleprofile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[p.ID]; !exists {
		return fmt.Errorf("role profile %s does not exist", p.ID)
	}

	r.items[p.ID] = p
	return nil
}
