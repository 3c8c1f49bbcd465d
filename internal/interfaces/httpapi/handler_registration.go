package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/user"
	"github.com/leaguedesk/leaguedesk/internal/usecase"
)

func (h *Handler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRegistration")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createRegistrationRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.registrationService.Create(ctx, usecase.CreateRegistrationInput{
		UserID:  principal.UserID,
		SportID: req.SportID,
		Roles:   req.Roles,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create registration failed", "user_id", principal.UserID, "sport_id", req.SportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, registrationToDTO(ctx, created))
}

func (h *Handler) ListMyRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyRegistrations")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	summaries, err := h.summaryService.ForUser(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list registrations failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]registrationSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, summaryToDTO(ctx, s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRegistration")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	item, err := h.ownedRegistration(ctx, principal, r.PathValue("registrationID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registrationToDTO(ctx, item))
}

func (h *Handler) SetRegistrationRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetRegistrationRoles")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	registrationID := strings.TrimSpace(r.PathValue("registrationID"))
	if _, err := h.ownedRegistration(ctx, principal, registrationID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setRolesRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.registrationService.SetRoles(ctx, usecase.SetRolesInput{
		RegistrationID: registrationID,
		Roles:          req.Roles,
		Append:         req.Append,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "set roles failed", "registration_id", registrationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registrationToDTO(ctx, updated))
}

func (h *Handler) RemoveRegistrationRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveRegistrationRole")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	registrationID := strings.TrimSpace(r.PathValue("registrationID"))
	if _, err := h.ownedRegistration(ctx, principal, registrationID); err != nil {
		writeError(ctx, w, err)
		return
	}

	roleName := strings.TrimSpace(r.PathValue("roleName"))
	updated, err := h.registrationService.RemoveRole(ctx, registrationID, roleName)
	if err != nil {
		h.logger.WarnContext(ctx, "remove role failed", "registration_id", registrationID, "role", roleName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registrationToDTO(ctx, updated))
}

// ownedRegistration loads a registration and hides other users' records
// behind not-found.
func (h *Handler) ownedRegistration(ctx context.Context, principal user.Principal, registrationID string) (registration.SportRegistration, error) {
	reg, err := h.registrationService.Get(ctx, strings.TrimSpace(registrationID))
	if err != nil {
		return registration.SportRegistration{}, err
	}
	if reg.UserID != principal.UserID {
		return registration.SportRegistration{}, fmt.Errorf("%w: registration %s", usecase.ErrNotFound, registrationID)
	}
	return reg, nil
}
