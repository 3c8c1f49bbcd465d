package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/infrastructure/repository/memory"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
)

type seqIDGenerator struct {
	prefix string
	next   int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

type serviceFixture struct {
	sports        *memory.SportRepository
	registrations *memory.RegistrationRepository
	profiles      *memory.RoleProfileRepository
	resolver      *RegistrationResolver
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()

	sports := memory.NewSportRepository(memory.SeedSports())
	registry, err := BuildRoleRegistry(t.Context(), sports)
	if err != nil {
		t.Fatalf("build registry failed: %v", err)
	}

	profiles := memory.NewRoleProfileRepository()
	return serviceFixture{
		sports:        sports,
		registrations: memory.NewRegistrationRepository(),
		profiles:      profiles,
		resolver:      NewRegistrationResolver(registry, profiles),
	}
}

func (f serviceFixture) registrationService() *RegistrationService {
	return NewRegistrationService(
		f.registrations,
		f.sports,
		f.resolver,
		&seqIDGenerator{prefix: "reg"},
		logging.NewNop(),
	)
}

func TestRegistrationService_Create(t *testing.T) {
	f := newServiceFixture(t)
	service := f.registrationService()

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player", "Coach"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.ID != "reg-001" {
		t.Fatalf("id = %s, want reg-001", created.ID)
	}
	if created.IsComplete {
		t.Fatal("new registration must start incomplete")
	}
	if got := created.Roles.Names(); len(got) != 2 || got[0] != "Player" || got[1] != "Coach" {
		t.Fatalf("roles = %v", got)
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("created at = %v, want %v", created.CreatedAt, now)
	}
}

func TestRegistrationService_Create_DuplicateSport(t *testing.T) {
	f := newServiceFixture(t)
	service := f.registrationService()

	if _, err := service.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player"},
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := service.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Coach"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegistrationService_Create_UnknownRolesOnly(t *testing.T) {
	f := newServiceFixture(t)
	service := f.registrationService()

	_, err := service.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Goalie", "Mascot"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegistrationService_Create_UnknownSport(t *testing.T) {
	f := newServiceFixture(t)
	service := f.registrationService()

	_, err := service.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: "sport-curling",
		Roles:   []string{"Player"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistrationService_SetRoles_AppendMergesAndResetsCompletion(t *testing.T) {
	f := newServiceFixture(t)
	service := f.registrationService()

	created, err := service.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	seedActiveProfile(t, f.profiles, "rp-1", "user-1", memory.SportIDIceHockey, role.Player, "team-a")

	// Player is covered, so a bare recompute marks the registration
	// complete; appending an uncovered role flips it back.
	updated, err := service.SetRoles(t.Context(), SetRolesInput{
		RegistrationID: created.ID,
		Roles:          []string{"Referee"},
		Append:         true,
	})
	if err != nil {
		t.Fatalf("set roles failed: %v", err)
	}

	if got := updated.Roles.Names(); len(got) != 2 || got[0] != "Player" || got[1] != "Referee" {
		t.Fatalf("roles = %v", got)
	}
	if updated.IsComplete {
		t.Fatal("registration with uncovered Referee must be incomplete")
	}
}

func TestRegistrationService_RemoveRole_Persists(t *testing.T) {
	f := newServiceFixture(t)
	service := f.registrationService()

	created, err := service.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player", "Coach"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	seedActiveProfile(t, f.profiles, "rp-1", "user-1", memory.SportIDIceHockey, role.Player, "team-a")

	updated, err := service.RemoveRole(t.Context(), created.ID, "coach")
	if err != nil {
		t.Fatalf("remove role failed: %v", err)
	}
	if got := updated.Roles.Names(); len(got) != 1 || got[0] != "Player" {
		t.Fatalf("roles = %v", got)
	}
	if !updated.IsComplete {
		t.Fatal("registration with only covered Player must be complete")
	}

	stored, _, err := f.registrations.GetByID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get stored registration failed: %v", err)
	}
	if !stored.IsComplete {
		t.Fatal("completion must be persisted")
	}
}

func TestRegistrationService_RemoveRole_DomainErrorsPassThrough(t *testing.T) {
	f := newServiceFixture(t)
	service := f.registrationService()

	created, err := service.Create(t.Context(), CreateRegistrationInput{
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := service.RemoveRole(t.Context(), created.ID, "Coach"); !errors.Is(err, registration.ErrRoleNotHeld) {
		t.Fatalf("expected ErrRoleNotHeld, got %v", err)
	}
	if _, err := service.RemoveRole(t.Context(), created.ID, "Player"); !errors.Is(err, registration.ErrLastRole) {
		t.Fatalf("expected ErrLastRole, got %v", err)
	}

	stored, _, err := f.registrations.GetByID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get stored registration failed: %v", err)
	}
	if got := stored.Roles.Names(); len(got) != 1 || got[0] != "Player" {
		t.Fatalf("stored roles mutated: %v", got)
	}
}
