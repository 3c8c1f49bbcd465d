package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
)

type RegistrationRepository struct {
	mu     sync.RWMutex
	items  map[string]registration.SportRegistration
	orders []string
}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{
		items: make(map[string]registration.SportRegistration),
	}
}

func (r *RegistrationRepository) Create(_ context.Context, reg registration.SportRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[reg.ID]; exists {
		return fmt.Errorf("registration %s already exists", reg.ID)
	}
	for _, id := range r.orders {
		existing := r.items[id]
		if existing.UserID == reg.UserID && existing.SportID == reg.SportID {
			return fmt.Errorf("registration already exists for user %s and sport %s", reg.UserID, reg.SportID)
		}
	}

	r.items[reg.ID] = reg
	r.orders = append(r.orders, reg.ID)
	return nil
}

func (r *RegistrationRepository) GetByID(_ context.Context, registrationID string) (registration.SportRegistration, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.items[registrationID]
	if !ok {
		return registration.SportRegistration{}, false, nil
	}

	return reg, true, nil
}

func (r *RegistrationRepository) GetByUserAndSport(_ context.Context, userID, sportID string) (registration.SportRegistration, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		reg := r.items[id]
		if reg.UserID == userID && reg.SportID == sportID {
			return reg, true, nil
		}
	}

	return registration.SportRegistration{}, false, nil
}

func (r *RegistrationRepository) ListByUser(_ context.Context, userID string) ([]registration.SportRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]registration.SportRegistration, 0)
	for _, id := range r.orders {
		if reg := r.items[id]; reg.UserID == userID {
			out = append(out, reg)
		}
	}

	return out, nil
}

func (r *RegistrationRepository) ListIncompleteByUser(_ context.Context, userID string) ([]registration.SportRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]registration.SportRegistration, 0)
	for _, id := range r.orders {
		if reg := r.items[id]; reg.UserID == userID && !reg.IsComplete {
			out = append(out, reg)
		}
	}

	return out, nil
}

func (r *RegistrationRepository) ListAll(_ context.Context) ([]registration.SportRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]registration.SportRegistration, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *RegistrationRepository) Update(_ context.Context, reg registration.SportRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[reg.ID]; !exists {
		return fmt.Errorf("registration %s does not exist", reg.ID)
	}

	r.items[reg.ID] = reg
	return nil
}
