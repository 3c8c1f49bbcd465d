package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/roleprofile"
	"github.com/leaguedesk/leaguedesk/internal/platform/id"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
)

type CreateRoleProfileInput struct {
	RegistrationID string
	Role           string
	ScopeID        string
}

// RoleProfileService owns role-specific profile records and the one
// workflow where profile state and the role ledger are coupled:
// deactivating the last active profile for a role strips the role.
type RoleProfileService struct {
	profiles      roleprofile.Repository
	registrations registration.Repository
	resolver      *RegistrationResolver
	tx            TxRunner
	ids           id.Generator
	logger        *logging.Logger
	now           func() time.Time
}

func NewRoleProfileService(
	profiles roleprofile.Repository,
	registrations registration.Repository,
	resolver *RegistrationResolver,
	tx TxRunner,
	ids id.Generator,
	logger *logging.Logger,
) *RoleProfileService {
	if tx == nil {
		tx = NopTxRunner{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &RoleProfileService{
		profiles:      profiles,
		registrations: registrations,
		resolver:      resolver,
		tx:            tx,
		ids:           ids,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *RoleProfileService) Create(ctx context.Context, input CreateRoleProfileInput) (roleprofile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "RoleProfileService.Create")
	defer span.End()

	input.RegistrationID = strings.TrimSpace(input.RegistrationID)
	input.ScopeID = strings.TrimSpace(input.ScopeID)

	if input.RegistrationID == "" {
		return roleprofile.Profile{}, fmt.Errorf("%w: registration_id is required", ErrInvalidInput)
	}
	if input.ScopeID == "" {
		return roleprofile.Profile{}, fmt.Errorf("%w: scope_id is required", ErrInvalidInput)
	}

	rr, ok := role.Parse(input.Role)
	if !ok {
		return roleprofile.Profile{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	reg, exists, err := s.registrations.GetByID(ctx, input.RegistrationID)
	if err != nil {
		return roleprofile.Profile{}, fmt.Errorf("get registration by id: %w", err)
	}
	if !exists {
		return roleprofile.Profile{}, fmt.Errorf("%w: registration not found", ErrNotFound)
	}
	if !reg.Roles.Contains(rr) {
		return roleprofile.Profile{}, fmt.Errorf("%w: %s", registration.ErrRoleNotHeld, rr)
	}

	existing, err := s.profiles.ListActive(ctx, reg.UserID, reg.SportID, rr, roleprofile.ScopeFilter{ScopeID: input.ScopeID})
	if err != nil {
		return roleprofile.Profile{}, fmt.Errorf("list active profiles: %w", err)
	}
	if len(existing) > 0 {
		return roleprofile.Profile{}, fmt.Errorf("%w: an active %s profile already exists for this scope", ErrInvalidInput, rr)
	}

	profileID, err := s.ids.NewID()
	if err != nil {
		return roleprofile.Profile{}, fmt.Errorf("generate profile id: %w", err)
	}

	now := s.now().UTC()
	p := roleprofile.Profile{
		ID:        profileID,
		UserID:    reg.UserID,
		SportID:   reg.SportID,
		Role:      rr,
		ScopeKind: rr.Scope(),
		ScopeID:   input.ScopeID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return roleprofile.Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		return roleprofile.Profile{}, fmt.Errorf("create role profile: %w", err)
	}

	// A new profile may satisfy the last pending role.
	if err := s.refreshCompletion(ctx, reg); err != nil {
		return roleprofile.Profile{}, err
	}

	s.logger.InfoContext(ctx, "role profile created",
		"profile_id", p.ID,
		"registration_id", reg.ID,
		"role", p.Role.String(),
		"scope_id", p.ScopeID,
	)

	return p, nil
}

// Deactivate marks one profile inactive. When it was the last active
// profile for its role across all scopes, the role is stripped from the
// owning registration in the same atomic unit; if that would empty the
// ledger the deactivation is undone and ErrLastRole is returned.
func (s *RoleProfileService) Deactivate(ctx context.Context, registrationID, profileID string) error {
	ctx, span := startUsecaseSpan(ctx, "RoleProfileService.Deactivate")
	defer span.End()

	registrationID = strings.TrimSpace(registrationID)
	profileID = strings.TrimSpace(profileID)

	if registrationID == "" {
		return fmt.Errorf("%w: registration_id is required", ErrInvalidInput)
	}
	if profileID == "" {
		return fmt.Errorf("%w: profile_id is required", ErrInvalidInput)
	}

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, exists, err := s.profiles.GetByID(ctx, profileID)
		if err != nil {
			return fmt.Errorf("get role profile by id: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: role profile not found", ErrNotFound)
		}
		if !p.IsActive {
			return fmt.Errorf("%w: role profile is already inactive", ErrInvalidInput)
		}

		reg, exists, err := s.registrations.GetByID(ctx, registrationID)
		if err != nil {
			return fmt.Errorf("get registration by id: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: registration not found", ErrNotFound)
		}
		if p.UserID != reg.UserID || p.SportID != reg.SportID {
			return fmt.Errorf("%w: role profile does not belong to this registration", ErrInvalidInput)
		}

		p.IsActive = false
		p.UpdatedAt = s.now().UTC()
		if err := s.profiles.Update(ctx, p); err != nil {
			return fmt.Errorf("deactivate role profile: %w", err)
		}

		// Scope-independent count: an active profile for the same role
		// anywhere keeps the role held.
		remaining, err := s.profiles.ListActive(ctx, reg.UserID, reg.SportID, p.Role, roleprofile.ScopeFilter{})
		if err != nil {
			return fmt.Errorf("count remaining active profiles: %w", err)
		}
		if len(remaining) > 0 {
			return nil
		}

		if err := reg.RemoveRole(p.Role.String()); err != nil {
			if errors.Is(err, registration.ErrLastRole) {
				p.IsActive = true
				p.UpdatedAt = s.now().UTC()
				if undoErr := s.profiles.Update(ctx, p); undoErr != nil {
					return fmt.Errorf("undo deactivation: %w", undoErr)
				}
			}
			return err
		}

		_, pending, err := s.resolver.NextPendingRole(ctx, reg)
		if err != nil {
			return err
		}
		reg.IsComplete = !pending
		reg.UpdatedAt = s.now().UTC()
		if err := s.registrations.Update(ctx, reg); err != nil {
			return fmt.Errorf("update registration: %w", err)
		}

		s.logger.InfoContext(ctx, "role stripped after last profile deactivation",
			"registration_id", reg.ID,
			"role", p.Role.String(),
		)
		return nil
	})
}

func (s *RoleProfileService) refreshCompletion(ctx context.Context, reg registration.SportRegistration) error {
	_, pending, err := s.resolver.NextPendingRole(ctx, reg)
	if err != nil {
		return err
	}

	complete := !pending
	if complete == reg.IsComplete {
		return nil
	}

	reg.IsComplete = complete
	reg.UpdatedAt = s.now().UTC()
	if err := s.registrations.Update(ctx, reg); err != nil {
		return fmt.Errorf("update registration completion: %w", err)
	}
	return nil
}
