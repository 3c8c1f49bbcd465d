package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/leaguedesk/leaguedesk/internal/domain/user"
	"github.com/leaguedesk/leaguedesk/internal/infrastructure/repository/memory"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
	"github.com/leaguedesk/leaguedesk/internal/usecase"
)

type stubVerifier struct {
	principal user.Principal
}

func (v stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if token != "valid-token" {
		return user.Principal{}, fmt.Errorf("%w: token rejected", usecase.ErrUnauthorized)
	}
	return v.principal, nil
}

const testInternalJobToken = "job-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	sports := memory.NewSportRepository(memory.SeedSports())
	profiles := memory.NewProfileRepository()
	registrations := memory.NewRegistrationRepository()
	roleProfiles := memory.NewRoleProfileRepository()
	sessions := memory.NewSessionStore()
	logger := logging.NewNop()

	registry, err := usecase.BuildRoleRegistry(context.Background(), sports)
	if err != nil {
		t.Fatalf("build role registry: %v", err)
	}
	resolver := usecase.NewRegistrationResolver(registry, roleProfiles)
	routes := NewRoutes()

	ids := &seqIDGenerator{prefix: "id"}
	registrationService := usecase.NewRegistrationService(registrations, sports, resolver, ids, logger)
	profileService := usecase.NewProfileService(profiles, ids)
	roleProfileService := usecase.NewRoleProfileService(roleProfiles, registrations, resolver, memory.NewTxRunner(), ids, logger)
	sportService := usecase.NewSportService(sports)
	summaryService := usecase.NewSummaryService(registrations, sports, resolver, routes)
	onboardingService := usecase.NewOnboardingService(profiles, registrations, resolver, sessions, routes, nil, logger)
	reconcileService := usecase.NewReconcileService(registrations, resolver, nil, logger, 2)

	handler := NewHandler(
		sportService,
		profileService,
		registrationService,
		roleProfileService,
		summaryService,
		onboardingService,
		reconcileService,
		logger,
	)

	verifier := stubVerifier{principal: user.Principal{UserID: "user-1", SessionID: "sess-1"}}
	return NewRouter(handler, verifier, onboardingService, logger, []string{"*"}, testInternalJobToken)
}

type seqIDGenerator struct {
	prefix string
	next   int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer valid-token")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return envelope.Data
}

func TestRouter_RejectsMissingBearerToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_PublicSportsNeedNoAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sports", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_GateRedirectsNewUserToProfileCreation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/dashboard", "")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != "/v1/profile/new" {
		t.Fatalf("expected redirect to /v1/profile/new, got %q", got)
	}
}

func TestRouter_FullOnboardingFlow(t *testing.T) {
	router := newTestRouter(t)

	// Profile creation is whitelisted, so it passes the gate even while
	// the state machine still says NoProfile.
	rec := doJSON(t, router, http.MethodPost, "/v1/profile/new", `{"gender":"female","birthday":"1994-03-11"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create profile: expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/dashboard", "")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/v1/registrations/new" {
		t.Fatalf("expected redirect to /v1/registrations/new, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/registrations/new", `{"sport_id":"sport-ice-hockey","roles":["Player","Coach"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create registration: expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	registrationID, _ := decodeData(t, rec)["id"].(string)
	if registrationID == "" {
		t.Fatalf("expected registration id in response")
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/dashboard", "")
	wantPlayer := "/v1/registrations/" + registrationID + "/roles/player/profile/new"
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != wantPlayer {
		t.Fatalf("expected redirect to %q, got %d %q", wantPlayer, rec.Code, rec.Header().Get("Location"))
	}

	rec = doJSON(t, router, http.MethodPost, wantPlayer, `{"scope_id":"team-huskies"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create player profile: expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/dashboard", "")
	wantCoach := "/v1/registrations/" + registrationID + "/roles/coach/profile/new"
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != wantCoach {
		t.Fatalf("expected redirect to %q, got %d %q", wantCoach, rec.Code, rec.Header().Get("Location"))
	}

	rec = doJSON(t, router, http.MethodPost, wantCoach, `{"scope_id":"team-huskies"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create coach profile: expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// All steps complete: the gate now lets the dashboard through and the
	// session carries the granted roles.
	rec = doJSON(t, router, http.MethodGet, "/v1/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	granted, _ := data["granted_roles"].([]any)
	if len(granted) != 2 {
		t.Fatalf("expected 2 granted roles, got %v", data["granted_roles"])
	}
}

func TestRouter_RemoveLastRoleFails(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/profile/new", `{}`)
	rec := doJSON(t, router, http.MethodPost, "/v1/registrations/new", `{"sport_id":"sport-baseball","roles":["Referee"]}`)
	registrationID, _ := decodeData(t, rec)["id"].(string)

	// Complete the registration first; the gate redirects mutations on
	// incomplete registrations just like any other authenticated request.
	rec = doJSON(t, router, http.MethodPost, "/v1/registrations/"+registrationID+"/roles/referee/profile/new", `{"scope_id":"league-aaa"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create referee profile: expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodDelete, "/v1/registrations/"+registrationID+"/roles/Referee", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "at least one role must remain") {
		t.Fatalf("expected a message naming the invariant, got %s", rec.Body.String())
	}
}

func TestRouter_InternalReconcileJob(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/reconcile", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without job token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/reconcile", nil)
	req.Header.Set("X-Internal-Job-Token", testInternalJobToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
