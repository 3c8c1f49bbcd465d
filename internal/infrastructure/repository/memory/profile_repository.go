package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/leaguedesk/leaguedesk/internal/domain/profile"
)

type ProfileRepository struct {
	mu      sync.RWMutex
	byUser  map[string]profile.Profile
	profile map[string]profile.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		byUser:  make(map[string]profile.Profile),
		profile: make(map[string]profile.Profile),
	}
}

func (r *ProfileRepository) Exists(_ context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUser[userID]
	return ok, nil
}

func (r *ProfileRepository) GetByUserID(_ context.Context, userID string) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUser[userID]
	if !ok {
		return profile.Profile{}, false, nil
	}

	return p, true, nil
}

func (r *ProfileRepository) Create(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUser[p.UserID]; exists {
		return fmt.Errorf("profile already exists for user %s", p.UserID)
	}
	if _, exists := r.profile[p.ID]; exists {
		return fmt.Errorf("profile %s already exists", p.ID)
	}

	r.byUser[p.UserID] = p
	r.profile[p.ID] = p
	return nil
}
