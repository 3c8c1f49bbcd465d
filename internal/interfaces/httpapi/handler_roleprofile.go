package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/leaguedesk/leaguedesk/internal/usecase"
)

func (h *Handler) CreateRoleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRoleProfile")
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

	var req createRoleProfileRequest
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

	roleKey := strings.TrimSpace(r.PathValue("roleKey"))
	created, err := h.roleProfileService.Create(ctx, usecase.CreateRoleProfileInput{
		RegistrationID: registrationID,
		Role:           roleKey,
		ScopeID:        req.ScopeID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create role profile failed", "registration_id", registrationID, "role", roleKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, roleProfileToDTO(ctx, created))
}

func (h *Handler) DeactivateRoleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivateRoleProfile")
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

	profileID := strings.TrimSpace(r.PathValue("profileID"))
	if err := h.roleProfileService.Deactivate(ctx, registrationID, profileID); err != nil {
		h.logger.WarnContext(ctx, "deactivate role profile failed", "registration_id", registrationID, "profile_id", profileID, "error", err)
		writeError(ctx, w, err)
		return
	}

	updated, err := h.registrationService.Get(ctx, registrationID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registrationToDTO(ctx, updated))
}
