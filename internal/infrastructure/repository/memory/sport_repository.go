package memory

import (
	"context"
	"sync"

	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
)

type SportRepository struct {
	mu     sync.RWMutex
	items  map[string]sport.Sport
	orders []string
}

func NewSportRepository(sports []sport.Sport) *SportRepository {
	items := make(map[string]sport.Sport, len(sports))
	orders := make([]string, 0, len(sports))

	for _, s := range sports {
		items[s.ID] = s
		orders = append(orders, s.ID)
	}

	return &SportRepository{
		items:  items,
		orders: orders,
	}
}

func (r *SportRepository) List(_ context.Context) ([]sport.Sport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sport.Sport, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *SportRepository) GetByID(_ context.Context, sportID string) (sport.Sport, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[sportID]
	if !ok {
		return sport.Sport{}, false, nil
	}

	return s, true, nil
}
