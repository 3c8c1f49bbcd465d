package usecase

import (
	"errors"
	"testing"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/infrastructure/repository/memory"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
)

func (f serviceFixture) roleProfileService() *RoleProfileService {
	return NewRoleProfileService(
		f.profiles,
		f.registrations,
		f.resolver,
		memory.NewTxRunner(),
		&seqIDGenerator{prefix: "rp"},
		logging.NewNop(),
	)
}

func TestRoleProfileService_Create_CompletesRegistration(t *testing.T) {
	f := newServiceFixture(t)
	registrations := f.registrationService()
	profiles := f.roleProfileService()

	created, err := registrations.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Coach"},
	})
	if err != nil {
		t.Fatalf("create registration failed: %v", err)
	}

	p, err := profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Coach",
		ScopeID:        "team-a",
	})
	if err != nil {
		t.Fatalf("create profile failed: %v", err)
	}
	if p.ScopeKind != role.ScopeTeam {
		t.Fatalf("scope kind = %s, want team", p.ScopeKind)
	}

	stored, _, err := f.registrations.GetByID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get registration failed: %v", err)
	}
	if !stored.IsComplete {
		t.Fatal("registration must be complete once its only role has a profile")
	}
}

func TestRoleProfileService_Create_RoleNotHeld(t *testing.T) {
	f := newServiceFixture(t)
	registrations := f.registrationService()
	profiles := f.roleProfileService()

	created, err := registrations.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player"},
	})
	if err != nil {
		t.Fatalf("create registration failed: %v", err)
	}

	_, err = profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Referee",
		ScopeID:        "league-a",
	})
	if !errors.Is(err, registration.ErrRoleNotHeld) {
		t.Fatalf("expected ErrRoleNotHeld, got %v", err)
	}
}

func TestRoleProfileService_Create_DuplicateActiveScope(t *testing.T) {
	f := newServiceFixture(t)
	registrations := f.registrationService()
	profiles := f.roleProfileService()

	created, err := registrations.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Coach"},
	})
	if err != nil {
		t.Fatalf("create registration failed: %v", err)
	}

	if _, err := profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Coach",
		ScopeID:        "team-a",
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Same scope is rejected; a second team is fine.
	_, err = profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Coach",
		ScopeID:        "team-a",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Coach",
		ScopeID:        "team-b",
	}); err != nil {
		t.Fatalf("second scope create failed: %v", err)
	}
}

func TestRoleProfileService_Deactivate_LastProfileOfOnlyRoleRollsBack(t *testing.T) {
	f := newServiceFixture(t)
	registrations := f.registrationService()
	profiles := f.roleProfileService()

	created, err := registrations.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Coach"},
	})
	if err != nil {
		t.Fatalf("create registration failed: %v", err)
	}
	p, err := profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Coach",
		ScopeID:        "team-a",
	})
	if err != nil {
		t.Fatalf("create profile failed: %v", err)
	}

	err = profiles.Deactivate(t.Context(), created.ID, p.ID)
	if !errors.Is(err, registration.ErrLastRole) {
		t.Fatalf("expected ErrLastRole, got %v", err)
	}

	// Neither write takes effect.
	storedProfile, _, err := f.profiles.GetByID(t.Context(), p.ID)
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if !storedProfile.IsActive {
		t.Fatal("profile must be re-activated after rollback")
	}
	storedReg, _, err := f.registrations.GetByID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get registration failed: %v", err)
	}
	if got := storedReg.Roles.Names(); len(got) != 1 || got[0] != "Coach" {
		t.Fatalf("roles mutated: %v", got)
	}
}

func TestRoleProfileService_Deactivate_OtherScopeKeepsRole(t *testing.T) {
	f := newServiceFixture(t)
	registrations := f.registrationService()
	profiles := f.roleProfileService()

	created, err := registrations.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Coach"},
	})
	if err != nil {
		t.Fatalf("create registration failed: %v", err)
	}
	first, err := profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Coach",
		ScopeID:        "team-a",
	})
	if err != nil {
		t.Fatalf("create first profile failed: %v", err)
	}
	if _, err := profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Coach",
		ScopeID:        "team-b",
	}); err != nil {
		t.Fatalf("create second profile failed: %v", err)
	}

	if err := profiles.Deactivate(t.Context(), created.ID, first.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	stored, _, err := f.registrations.GetByID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get registration failed: %v", err)
	}
	if !stored.Roles.Has("Coach") {
		t.Fatal("role must survive while another active profile exists")
	}
}

func TestRoleProfileService_Deactivate_StripsRoleAndRecomputesCompletion(t *testing.T) {
	f := newServiceFixture(t)
	registrations := f.registrationService()
	profiles := f.roleProfileService()

	created, err := registrations.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player", "Coach"},
	})
	if err != nil {
		t.Fatalf("create registration failed: %v", err)
	}
	if _, err := profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Player",
		ScopeID:        "team-a",
	}); err != nil {
		t.Fatalf("create player profile failed: %v", err)
	}
	coach, err := profiles.Create(t.Context(), CreateRoleProfileInput{
		RegistrationID: created.ID,
		Role:           "Coach",
		ScopeID:        "team-a",
	})
	if err != nil {
		t.Fatalf("create coach profile failed: %v", err)
	}

	if err := profiles.Deactivate(t.Context(), created.ID, coach.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	stored, _, err := f.registrations.GetByID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get registration failed: %v", err)
	}
	if stored.Roles.Has("Coach") {
		t.Fatal("Coach must be stripped after its last profile deactivates")
	}
	if !stored.IsComplete {
		t.Fatal("registration must be complete with only the covered Player left")
	}
}
