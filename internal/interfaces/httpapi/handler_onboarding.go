package httpapi

import (
	"fmt"
	"net/http"

	"github.com/leaguedesk/leaguedesk/internal/usecase"
)

func (h *Handler) GetOnboardingState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOnboardingState")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	state, err := h.onboardingService.SessionState(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "get onboarding state failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionStateToDTO(ctx, state))
}

// GetDashboard is role-gated: it reads the granted roles cached on the
// session rather than recomputing them from storage.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	state, err := h.onboardingService.SessionState(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "get session state failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	summaries, err := h.summaryService.ForUser(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list summaries failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]registrationSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, summaryToDTO(ctx, s))
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{
		GrantedRoles:  append([]string{}, state.GrantedRoles...),
		Registrations: items,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	if err := h.onboardingService.Logout(ctx, principal); err != nil {
		h.logger.WarnContext(ctx, "logout failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "logged_out"})
}
