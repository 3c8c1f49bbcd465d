package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/profile"
	"github.com/leaguedesk/leaguedesk/internal/platform/id"
)

type CreateProfileInput struct {
	UserID   string
	Gender   string
	Birthday time.Time
	Height   string
	Weight   int
}

type ProfileService struct {
	profiles profile.Repository
	ids      id.Generator
	now      func() time.Time
}

func NewProfileService(profiles profile.Repository, ids id.Generator) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		ids:      ids,
		now:      time.Now,
	}
}

func (s *ProfileService) Create(ctx context.Context, input CreateProfileInput) (profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "ProfileService.Create")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	if input.UserID == "" {
		return profile.Profile{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	exists, err := s.profiles.Exists(ctx, input.UserID)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("check profile existence: %w", err)
	}
	if exists {
		return profile.Profile{}, fmt.Errorf("%w: profile already exists", ErrInvalidInput)
	}

	profileID, err := s.ids.NewID()
	if err != nil {
		return profile.Profile{}, fmt.Errorf("generate profile id: %w", err)
	}

	now := s.now().UTC()
	p := profile.Profile{
		ID:        profileID,
		UserID:    input.UserID,
		Gender:    strings.TrimSpace(input.Gender),
		Birthday:  input.Birthday,
		Height:    strings.TrimSpace(input.Height),
		Weight:    input.Weight,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		return profile.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	return p, nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "ProfileService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profile.Profile{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	p, exists, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("get profile by user id: %w", err)
	}
	if !exists {
		return profile.Profile{}, fmt.Errorf("%w: profile not found", ErrNotFound)
	}

	return p, nil
}
