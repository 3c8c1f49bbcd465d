package httpapi

import (
	"net/http"

	"github.com/leaguedesk/leaguedesk/internal/usecase"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/sports/{sportID}", handler.GetSport)
}

// registerAuthorizedRoutes puts every authenticated route behind the
// onboarding gate. The gate whitelists its own redirect targets, so the
// setup pages below stay reachable while onboarding is pending.
func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, gate *usecase.OnboardingService) {
	gated := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, OnboardingGate(gate, h))
	}

	mux.Handle("POST "+profileCreatePath, gated(handler.CreateProfile))
	mux.Handle("GET /v1/profile/me", gated(handler.GetMyProfile))

	mux.Handle("POST "+registrationCreatePath, gated(handler.CreateRegistration))
	mux.Handle("GET /v1/registrations", gated(handler.ListMyRegistrations))
	mux.Handle("GET /v1/registrations/{registrationID}", gated(handler.GetRegistration))
	mux.Handle("PATCH /v1/registrations/{registrationID}/roles", gated(handler.SetRegistrationRoles))
	mux.Handle("DELETE /v1/registrations/{registrationID}/roles/{roleName}", gated(handler.RemoveRegistrationRole))

	mux.Handle("POST /v1/registrations/{registrationID}/roles/{roleKey}/profile/new", gated(handler.CreateRoleProfile))
	mux.Handle("DELETE /v1/registrations/{registrationID}/role-profiles/{profileID}", gated(handler.DeactivateRoleProfile))

	mux.Handle("GET /v1/onboarding/state", gated(handler.GetOnboardingState))
	mux.Handle("GET /v1/dashboard", gated(handler.GetDashboard))
	mux.Handle("POST "+logoutPath, gated(handler.Logout))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/reconcile", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReconcileJob)))
}
