package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/user"
	"github.com/leaguedesk/leaguedesk/internal/infrastructure/repository/memory"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
)

type stubRoutes struct{}

func (stubRoutes) ProfileCreatePath() string      { return "/v1/profile/new" }
func (stubRoutes) RegistrationCreatePath() string { return "/v1/registrations/new" }
func (stubRoutes) LogoutPath() string             { return "/v1/logout" }

func (stubRoutes) RoleProfileCreatePath(registrationID string, r role.Role) string {
	return "/v1/registrations/" + registrationID + "/roles/" + r.RoutingKey() + "/profile/new"
}

func (stubRoutes) IsRoleProfileCreatePath(path string) bool {
	return strings.HasPrefix(path, "/v1/registrations/") && strings.HasSuffix(path, "/profile/new")
}

type recordingNotifier struct {
	sportIDs []string
}

func (n *recordingNotifier) NotifyRegistryMisconfigured(_ context.Context, sportID string, _ error) {
	n.sportIDs = append(n.sportIDs, sportID)
}

type onboardingFixture struct {
	serviceFixture
	userProfiles *memory.ProfileRepository
	sessions     *memory.SessionStore
	notifier     *recordingNotifier
	service      *OnboardingService
}

func newOnboardingFixture(t *testing.T) onboardingFixture {
	t.Helper()

	f := newServiceFixture(t)
	userProfiles := memory.NewProfileRepository()
	sessions := memory.NewSessionStore()
	notifier := &recordingNotifier{}

	service := NewOnboardingService(
		userProfiles,
		f.registrations,
		f.resolver,
		sessions,
		stubRoutes{},
		notifier,
		logging.NewNop(),
	)

	return onboardingFixture{
		serviceFixture: f,
		userProfiles:   userProfiles,
		sessions:       sessions,
		notifier:       notifier,
		service:        service,
	}
}

func (f onboardingFixture) createProfile(t *testing.T, userID string) {
	t.Helper()

	svc := NewProfileService(f.userProfiles, &seqIDGenerator{prefix: "prof-" + userID})
	if _, err := svc.Create(t.Context(), CreateProfileInput{UserID: userID}); err != nil {
		t.Fatalf("create profile for %s failed: %v", userID, err)
	}
}

var testPrincipal = user.Principal{UserID: "user-1", SessionID: "sess-1", Email: "user-1@example.com"}

func TestOnboarding_NoProfileRedirectsToProfileCreate(t *testing.T) {
	f := newOnboardingFixture(t)

	decision, err := f.service.ComputeRoutingDecision(t.Context(), testPrincipal, "/v1/dashboard")
	if err != nil {
		t.Fatalf("routing decision failed: %v", err)
	}

	if decision.Allow {
		t.Fatal("expected a redirect")
	}
	if decision.RedirectTo != "/v1/profile/new" {
		t.Fatalf("redirect = %s, want profile create", decision.RedirectTo)
	}

	state, ok, err := f.sessions.Get(t.Context(), testPrincipal.SessionID)
	if err != nil || !ok {
		t.Fatalf("session state missing: ok=%v err=%v", ok, err)
	}
	if !state.IsCurrentlyRegistering {
		t.Fatal("is_currently_registering must be set")
	}
}

func TestOnboarding_NoRegistrationRedirectsToRegistrationCreate(t *testing.T) {
	f := newOnboardingFixture(t)
	f.createProfile(t, testPrincipal.UserID)

	decision, err := f.service.ComputeRoutingDecision(t.Context(), testPrincipal, "/v1/dashboard")
	if err != nil {
		t.Fatalf("routing decision failed: %v", err)
	}
	if decision.RedirectTo != "/v1/registrations/new" {
		t.Fatalf("redirect = %s, want registration create", decision.RedirectTo)
	}
}

func TestOnboarding_IncompleteRegistrationRedirectsToNextRole(t *testing.T) {
	f := newOnboardingFixture(t)
	f.createProfile(t, testPrincipal.UserID)

	created, err := f.registrationService().Create(t.Context(), CreateRegistrationInput{
		UserID:  testPrincipal.UserID,
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player", "Coach"},
	})
	if err != nil {
		t.Fatalf("create registration failed: %v", err)
	}
	seedActiveProfile(t, f.profiles, "rp-1", testPrincipal.UserID, memory.SportIDIceHockey, role.Player, "team-a")

	decision, err := f.service.ComputeRoutingDecision(t.Context(), testPrincipal, "/v1/dashboard")
	if err != nil {
		t.Fatalf("routing decision failed: %v", err)
	}

	want := "/v1/registrations/" + created.ID + "/roles/coach/profile/new"
	if decision.RedirectTo != want {
		t.Fatalf("redirect = %s, want %s", decision.RedirectTo, want)
	}
}

func TestOnboarding_SecondIncompleteRegistrationIsQueued(t *testing.T) {
	f := newOnboardingFixture(t)
	f.createProfile(t, testPrincipal.UserID)

	regService := f.registrationService()
	hockey, err := regService.Create(t.Context(), CreateRegistrationInput{
		UserID:  testPrincipal.UserID,
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Referee"},
	})
	if err != nil {
		t.Fatalf("create hockey registration failed: %v", err)
	}
	baseball, err := regService.Create(t.Context(), CreateRegistrationInput{
		UserID:  testPrincipal.UserID,
		SportID: memory.SportIDBaseball,
		Roles:   []string{"Manager"},
	})
	if err != nil {
		t.Fatalf("create baseball registration failed: %v", err)
	}

	decision, err := f.service.ComputeRoutingDecision(t.Context(), testPrincipal, "/v1/dashboard")
	if err != nil {
		t.Fatalf("routing decision failed: %v", err)
	}

	want := "/v1/registrations/" + hockey.ID + "/roles/referee/profile/new"
	if decision.RedirectTo != want {
		t.Fatalf("redirect = %s, want first-found hockey referee page", decision.RedirectTo)
	}

	state, _, err := f.sessions.Get(t.Context(), testPrincipal.SessionID)
	if err != nil {
		t.Fatalf("get session state failed: %v", err)
	}
	if len(state.PendingQueue) != 1 {
		t.Fatalf("pending queue = %v, want one entry", state.PendingQueue)
	}
	if state.PendingQueue[0].RegistrationID != baseball.ID || state.PendingQueue[0].Role != "Manager" {
		t.Fatalf("queued step = %+v", state.PendingQueue[0])
	}
}

func TestOnboarding_AllCompleteAllowsAndGrantsRoles(t *testing.T) {
	f := newOnboardingFixture(t)
	f.createProfile(t, testPrincipal.UserID)

	created, err := f.registrationService().Create(t.Context(), CreateRegistrationInput{
		UserID:  testPrincipal.UserID,
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player", "Coach"},
	})
	if err != nil {
		t.Fatalf("create registration failed: %v", err)
	}
	seedActiveProfile(t, f.profiles, "rp-1", testPrincipal.UserID, memory.SportIDIceHockey, role.Player, "team-a")
	seedActiveProfile(t, f.profiles, "rp-2", testPrincipal.UserID, memory.SportIDIceHockey, role.Coach, "team-a")

	decision, err := f.service.ComputeRoutingDecision(t.Context(), testPrincipal, "/v1/dashboard")
	if err != nil {
		t.Fatalf("routing decision failed: %v", err)
	}
	if !decision.Allow {
		t.Fatalf("expected allow, got redirect to %s", decision.RedirectTo)
	}

	stored, _, err := f.registrations.GetByID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get registration failed: %v", err)
	}
	if !stored.IsComplete {
		t.Fatal("registration must be marked complete")
	}

	state, _, err := f.sessions.Get(t.Context(), testPrincipal.SessionID)
	if err != nil {
		t.Fatalf("get session state failed: %v", err)
	}
	if state.IsCurrentlyRegistering {
		t.Fatal("is_currently_registering must be cleared")
	}
	if len(state.GrantedRoles) != 2 || state.GrantedRoles[0] != "Player" || state.GrantedRoles[1] != "Coach" {
		t.Fatalf("granted roles = %v", state.GrantedRoles)
	}
}

func TestOnboarding_WhitelistedPathsPassThrough(t *testing.T) {
	f := newOnboardingFixture(t)

	// No profile at all, yet the resolving pages stay reachable.
	paths := []string{
		"/v1/logout",
		"/v1/profile/new",
		"/v1/registrations/new",
		"/v1/registrations/reg-001/roles/coach/profile/new",
	}
	for _, path := range paths {
		decision, err := f.service.ComputeRoutingDecision(t.Context(), testPrincipal, path)
		if err != nil {
			t.Fatalf("routing decision for %s failed: %v", path, err)
		}
		if !decision.Allow {
			t.Fatalf("whitelisted path %s must pass through", path)
		}
	}
}

func TestOnboarding_BypassedTrafficSkipsTheGate(t *testing.T) {
	f := newOnboardingFixture(t)

	decision, err := f.service.ComputeRoutingDecision(t.Context(), testPrincipal, "/debug/pprof/heap")
	if err != nil {
		t.Fatalf("routing decision failed: %v", err)
	}
	if !decision.Allow {
		t.Fatal("debug traffic must bypass the gate")
	}
	if _, ok, err := f.sessions.Get(t.Context(), testPrincipal.SessionID); err != nil || ok {
		t.Fatalf("bypassed traffic must not touch session state: ok=%v err=%v", ok, err)
	}
}

func TestOnboarding_MisconfiguredSportAlertsOperators(t *testing.T) {
	f := newOnboardingFixture(t)
	f.createProfile(t, testPrincipal.UserID)

	// A registration referencing an unconfigured sport, as CSV imports
	// can produce.
	reg, err := f.registrationService().Create(t.Context(), CreateRegistrationInput{
		UserID:  testPrincipal.UserID,
		SportID: memory.SportIDIceHockey,
		Roles:   []string{"Player"},
	})
	if err != nil {
		t.Fatalf("create registration failed: %v", err)
	}
	reg.SportID = "sport-curling"
	if err := f.registrations.Update(t.Context(), reg); err != nil {
		t.Fatalf("rewrite registration failed: %v", err)
	}

	_, err = f.service.ComputeRoutingDecision(t.Context(), testPrincipal, "/v1/dashboard")
	if !isRegistryMisconfigured(err) {
		t.Fatalf("expected registry misconfiguration, got %v", err)
	}
	if len(f.notifier.sportIDs) != 1 || f.notifier.sportIDs[0] != "sport-curling" {
		t.Fatalf("notifier calls = %v", f.notifier.sportIDs)
	}
}

func TestOnboarding_LogoutClearsSessionState(t *testing.T) {
	f := newOnboardingFixture(t)

	if _, err := f.service.ComputeRoutingDecision(t.Context(), testPrincipal, "/v1/dashboard"); err != nil {
		t.Fatalf("routing decision failed: %v", err)
	}
	if _, ok, _ := f.sessions.Get(t.Context(), testPrincipal.SessionID); !ok {
		t.Fatal("expected session state to exist")
	}

	if err := f.service.Logout(t.Context(), testPrincipal); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok, _ := f.sessions.Get(t.Context(), testPrincipal.SessionID); ok {
		t.Fatal("session state must be cleared on logout")
	}
}
