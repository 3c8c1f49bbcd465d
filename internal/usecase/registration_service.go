package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
	"github.com/leaguedesk/leaguedesk/internal/platform/id"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
)

type CreateRegistrationInput struct {
	UserID  string
	SportID string
	Roles   []string
}

type SetRolesInput struct {
	RegistrationID string
	Roles          []string
	Append         bool
}

// RegistrationService owns the sport registration lifecycle. The role
// ledger is only ever written through the domain mutators; after every
// write the completion flag is recomputed from the resolver.
type RegistrationService struct {
	registrations registration.Repository
	sports        sport.Repository
	resolver      *RegistrationResolver
	ids           id.Generator
	logger        *logging.Logger
	now           func() time.Time
}

func NewRegistrationService(
	registrations registration.Repository,
	sports sport.Repository,
	resolver *RegistrationResolver,
	ids id.Generator,
	logger *logging.Logger,
) *RegistrationService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &RegistrationService{
		registrations: registrations,
		sports:        sports,
		resolver:      resolver,
		ids:           ids,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *RegistrationService) Create(ctx context.Context, input CreateRegistrationInput) (registration.SportRegistration, error) {
	ctx, span := startUsecaseSpan(ctx, "RegistrationService.Create")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.SportID = strings.TrimSpace(input.SportID)

	if input.UserID == "" {
		return registration.SportRegistration{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if input.SportID == "" {
		return registration.SportRegistration{}, fmt.Errorf("%w: sport_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.sports.GetByID(ctx, input.SportID); err != nil {
		return registration.SportRegistration{}, fmt.Errorf("get sport by id: %w", err)
	} else if !exists {
		return registration.SportRegistration{}, fmt.Errorf("%w: sport not found", ErrNotFound)
	}

	if _, exists, err := s.registrations.GetByUserAndSport(ctx, input.UserID, input.SportID); err != nil {
		return registration.SportRegistration{}, fmt.Errorf("get registration by user and sport: %w", err)
	} else if exists {
		return registration.SportRegistration{}, fmt.Errorf("%w: user already registered for this sport", ErrInvalidInput)
	}

	roles := s.parseRoles(ctx, input.Roles)
	if roles.IsEmpty() {
		return registration.SportRegistration{}, fmt.Errorf("%w: at least one recognized role is required", ErrInvalidInput)
	}

	registrationID, err := s.ids.NewID()
	if err != nil {
		return registration.SportRegistration{}, fmt.Errorf("generate registration id: %w", err)
	}

	now := s.now().UTC()
	reg := registration.SportRegistration{
		ID:        registrationID,
		UserID:    input.UserID,
		SportID:   input.SportID,
		Roles:     roles,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := reg.Validate(); err != nil {
		return registration.SportRegistration{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.registrations.Create(ctx, reg); err != nil {
		return registration.SportRegistration{}, fmt.Errorf("create registration: %w", err)
	}

	s.logger.InfoContext(ctx, "sport registration created",
		"registration_id", reg.ID,
		"user_id", reg.UserID,
		"sport_id", reg.SportID,
		"roles", reg.Roles.Names(),
	)

	return reg, nil
}

func (s *RegistrationService) Get(ctx context.Context, registrationID string) (registration.SportRegistration, error) {
	ctx, span := startUsecaseSpan(ctx, "RegistrationService.Get")
	defer span.End()

	registrationID = strings.TrimSpace(registrationID)
	if registrationID == "" {
		return registration.SportRegistration{}, fmt.Errorf("%w: registration_id is required", ErrInvalidInput)
	}

	reg, exists, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return registration.SportRegistration{}, fmt.Errorf("get registration by id: %w", err)
	}
	if !exists {
		return registration.SportRegistration{}, fmt.Errorf("%w: registration not found", ErrNotFound)
	}

	return reg, nil
}

func (s *RegistrationService) ListByUser(ctx context.Context, userID string) ([]registration.SportRegistration, error) {
	ctx, span := startUsecaseSpan(ctx, "RegistrationService.ListByUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	regs, err := s.registrations.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by user: %w", err)
	}

	return regs, nil
}

// SetRoles replaces or OR-merges the held roles and re-derives the
// completion flag against the profiles that already exist.
func (s *RegistrationService) SetRoles(ctx context.Context, input SetRolesInput) (registration.SportRegistration, error) {
	ctx, span := startUsecaseSpan(ctx, "RegistrationService.SetRoles")
	defer span.End()

	reg, err := s.Get(ctx, input.RegistrationID)
	if err != nil {
		return registration.SportRegistration{}, err
	}

	incoming := s.parseRoles(ctx, input.Roles)
	if !input.Append && incoming.IsEmpty() {
		return registration.SportRegistration{}, fmt.Errorf("%w: at least one recognized role is required", ErrInvalidInput)
	}

	reg.SetRoles(incoming.Names(), input.Append)
	if err := s.refreshCompletion(ctx, &reg); err != nil {
		return registration.SportRegistration{}, err
	}

	reg.UpdatedAt = s.now().UTC()
	if err := s.registrations.Update(ctx, reg); err != nil {
		return registration.SportRegistration{}, fmt.Errorf("update registration: %w", err)
	}

	return reg, nil
}

// RemoveRole strips one role from the ledger. Domain errors pass through
// untouched so the interface layer can name the failing role.
func (s *RegistrationService) RemoveRole(ctx context.Context, registrationID, roleName string) (registration.SportRegistration, error) {
	ctx, span := startUsecaseSpan(ctx, "RegistrationService.RemoveRole")
	defer span.End()

	reg, err := s.Get(ctx, registrationID)
	if err != nil {
		return registration.SportRegistration{}, err
	}

	if err := reg.RemoveRole(roleName); err != nil {
		return registration.SportRegistration{}, err
	}
	if err := s.refreshCompletion(ctx, &reg); err != nil {
		return registration.SportRegistration{}, err
	}

	reg.UpdatedAt = s.now().UTC()
	if err := s.registrations.Update(ctx, reg); err != nil {
		return registration.SportRegistration{}, fmt.Errorf("update registration: %w", err)
	}

	return reg, nil
}

// refreshCompletion recomputes is_complete from the resolver. Completion
// is true exactly when no held role is pending.
func (s *RegistrationService) refreshCompletion(ctx context.Context, reg *registration.SportRegistration) error {
	_, pending, err := s.resolver.NextPendingRole(ctx, *reg)
	if err != nil {
		return err
	}

	reg.IsComplete = !pending
	return nil
}

// parseRoles builds a role set from raw names. Unknown names are dropped
// for compatibility with existing callers; the drop is logged so it is a
// deliberate decision rather than a silent one.
func (s *RegistrationService) parseRoles(ctx context.Context, names []string) role.Set {
	parsed := role.NewSet(names...)
	if parsed.Len() == len(names) {
		return parsed
	}

	dropped := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := role.Parse(name); !ok {
			dropped = append(dropped, name)
		}
	}
	if len(dropped) > 0 {
		s.logger.DebugContext(ctx, "unknown role names dropped", "dropped", dropped)
	}

	return parsed
}
