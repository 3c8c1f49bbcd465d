package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/roleprofile"
	"github.com/leaguedesk/leaguedesk/internal/infrastructure/repository/memory"
)

func newTestResolver(t *testing.T) (*RegistrationResolver, *memory.RoleProfileRepository) {
	t.Helper()

	registry, err := BuildRoleRegistry(t.Context(), memory.NewSportRepository(memory.SeedSports()))
	if err != nil {
		t.Fatalf("build registry failed: %v", err)
	}

	profiles := memory.NewRoleProfileRepository()
	return NewRegistrationResolver(registry, profiles), profiles
}

func seedActiveProfile(t *testing.T, profiles *memory.RoleProfileRepository, id, userID, sportID string, rr role.Role, scopeID string) {
	t.Helper()

	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	err := profiles.Create(context.Background(), roleprofile.Profile{
		ID:        id,
		UserID:    userID,
		SportID:   sportID,
		Role:      rr,
		ScopeKind: rr.Scope(),
		ScopeID:   scopeID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed profile %s failed: %v", id, err)
	}
}

func TestResolver_NextPendingRole_CanonicalOrder(t *testing.T) {
	t.Parallel()

	resolver, profiles := newTestResolver(t)

	// Manager has a profile, Coach does not. Coach precedes Manager in
	// the vocabulary, so Coach must come back first no matter the grant
	// order.
	seedActiveProfile(t, profiles, "rp-1", "user-1", memory.SportIDIceHockey, role.Manager, "team-a")

	reg := registration.SportRegistration{
		ID:      "reg-1",
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   role.NewSet("Manager", "Coach"),
	}

	next, pending, err := resolver.NextPendingRole(t.Context(), reg)
	if err != nil {
		t.Fatalf("next pending role failed: %v", err)
	}
	if !pending {
		t.Fatal("expected a pending role")
	}
	if next != role.Coach {
		t.Fatalf("next pending role = %s, want Coach", next)
	}
}

func TestResolver_NextPendingRole_NonePendingSignalsComplete(t *testing.T) {
	t.Parallel()

	resolver, profiles := newTestResolver(t)
	seedActiveProfile(t, profiles, "rp-1", "user-1", memory.SportIDIceHockey, role.Player, "team-a")

	reg := registration.SportRegistration{
		ID:      "reg-1",
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   role.NewSet("Player"),
	}

	_, pending, err := resolver.NextPendingRole(t.Context(), reg)
	if err != nil {
		t.Fatalf("next pending role failed: %v", err)
	}
	if pending {
		t.Fatal("expected no pending role")
	}
}

func TestResolver_RelatedRoleObjects_InactiveProfilesDoNotCount(t *testing.T) {
	t.Parallel()

	resolver, profiles := newTestResolver(t)
	seedActiveProfile(t, profiles, "rp-1", "user-1", memory.SportIDIceHockey, role.Referee, "league-a")

	stored, _, err := profiles.GetByID(t.Context(), "rp-1")
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	stored.IsActive = false
	if err := profiles.Update(t.Context(), stored); err != nil {
		t.Fatalf("deactivate profile failed: %v", err)
	}

	reg := registration.SportRegistration{
		ID:      "reg-1",
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   role.NewSet("Referee"),
	}

	related, err := resolver.RelatedRoleObjects(t.Context(), reg)
	if err != nil {
		t.Fatalf("related role objects failed: %v", err)
	}
	if related[role.Referee] != nil {
		t.Fatalf("expected nil entry for Referee, got %v", related[role.Referee])
	}
}

func TestResolver_RecomputesHeldRolesEachCall(t *testing.T) {
	t.Parallel()

	resolver, profiles := newTestResolver(t)
	seedActiveProfile(t, profiles, "rp-1", "user-1", memory.SportIDIceHockey, role.Player, "team-a")

	reg := registration.SportRegistration{
		ID:      "reg-1",
		UserID:  "user-1",
		SportID: memory.SportIDIceHockey,
		Roles:   role.NewSet("Player"),
	}

	related, err := resolver.RelatedRoleObjects(t.Context(), reg)
	if err != nil {
		t.Fatalf("related role objects failed: %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(related))
	}

	reg.SetRoles([]string{"Player", "Scorekeeper"}, false)
	related, err = resolver.RelatedRoleObjects(t.Context(), reg)
	if err != nil {
		t.Fatalf("related role objects failed: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected 2 entries after role change, got %d", len(related))
	}
	if related[role.Scorekeeper] != nil {
		t.Fatal("expected Scorekeeper to be missing")
	}
}
