package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
)

type SportService struct {
	sports sport.Repository
}

func NewSportService(sports sport.Repository) *SportService {
	return &SportService{sports: sports}
}

func (s *SportService) List(ctx context.Context) ([]sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "SportService.List")
	defer span.End()

	sports, err := s.sports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	return sports, nil
}

func (s *SportService) Get(ctx context.Context, sportID string) (sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "SportService.Get")
	defer span.End()

	sportID = strings.TrimSpace(sportID)
	if sportID == "" {
		return sport.Sport{}, fmt.Errorf("%w: sport_id is required", ErrInvalidInput)
	}

	found, exists, err := s.sports.GetByID(ctx, sportID)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("get sport by id: %w", err)
	}
	if !exists {
		return sport.Sport{}, fmt.Errorf("%w: sport not found", ErrNotFound)
	}

	return found, nil
}
