package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/leaguedesk/leaguedesk/internal/domain/profile"
	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/roleprofile"
	"github.com/leaguedesk/leaguedesk/internal/domain/session"
	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
	"github.com/leaguedesk/leaguedesk/internal/usecase"
)

type Handler struct {
	sportService        *usecase.SportService
	profileService      *usecase.ProfileService
	registrationService *usecase.RegistrationService
	roleProfileService  *usecase.RoleProfileService
	summaryService      *usecase.SummaryService
	onboardingService   *usecase.OnboardingService
	reconcileService    *usecase.ReconcileService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	sportService *usecase.SportService,
	profileService *usecase.ProfileService,
	registrationService *usecase.RegistrationService,
	roleProfileService *usecase.RoleProfileService,
	summaryService *usecase.SummaryService,
	onboardingService *usecase.OnboardingService,
	reconcileService *usecase.ReconcileService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		sportService:        sportService,
		profileService:      profileService,
		registrationService: registrationService,
		roleProfileService:  roleProfileService,
		summaryService:      summaryService,
		onboardingService:   onboardingService,
		reconcileService:    reconcileService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type createProfileRequest struct {
	Gender   string `json:"gender" validate:"omitempty,oneof=male female other"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Height   string `json:"height" validate:"omitempty,max=16"`
	Weight   int    `json:"weight" validate:"omitempty,gt=0,lt=500"`
}

type createRegistrationRequest struct {
	SportID string   `json:"sport_id" validate:"required"`
	Roles   []string `json:"roles" validate:"required,min=1,dive,required"`
}

type setRolesRequest struct {
	Roles  []string `json:"roles" validate:"required,min=1,dive,required"`
	Append bool     `json:"append"`
}

type createRoleProfileRequest struct {
	ScopeID string `json:"scope_id" validate:"required,max=80"`
}

type sportDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type profileDTO struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Gender       string `json:"gender,omitempty"`
	Birthday     string `json:"birthday,omitempty"`
	Height       string `json:"height,omitempty"`
	Weight       int    `json:"weight,omitempty"`
	CreatedAtUTC string `json:"created_at_utc"`
	UpdatedAtUTC string `json:"updated_at_utc"`
}

type registrationDTO struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	SportID      string   `json:"sport_id"`
	Roles        []string `json:"roles"`
	IsComplete   bool     `json:"is_complete"`
	CreatedAtUTC string   `json:"created_at_utc"`
	UpdatedAtUTC string   `json:"updated_at_utc"`
}

type roleProfileDTO struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	SportID      string `json:"sport_id"`
	Role         string `json:"role"`
	ScopeKind    string `json:"scope_kind"`
	ScopeID      string `json:"scope_id"`
	IsActive     bool   `json:"is_active"`
	CreatedAtUTC string `json:"created_at_utc"`
	UpdatedAtUTC string `json:"updated_at_utc"`
}

type registrationSummaryDTO struct {
	RegistrationID string   `json:"registration_id"`
	SportID        string   `json:"sport_id"`
	SportName      string   `json:"sport_name"`
	HeldRoles      []string `json:"held_roles"`
	MissingRoles   []string `json:"missing_roles"`
	IsComplete     bool     `json:"is_complete"`
	NextStepPath   string   `json:"next_step_path,omitempty"`
}

type pendingStepDTO struct {
	RegistrationID string `json:"registration_id"`
	Role           string `json:"role"`
}

type onboardingStateDTO struct {
	IsCurrentlyRegistering bool             `json:"is_currently_registering"`
	PendingQueue           []pendingStepDTO `json:"pending_queue"`
	GrantedRoles           []string         `json:"granted_roles"`
	UpdatedAtUTC           string           `json:"updated_at_utc,omitempty"`
}

type dashboardDTO struct {
	GrantedRoles  []string                 `json:"granted_roles"`
	Registrations []registrationSummaryDTO `json:"registrations"`
}

type reconcileReportDTO struct {
	Scanned    int   `json:"scanned"`
	Updated    int   `json:"updated"`
	Failed     int   `json:"failed"`
	DurationMS int64 `json:"duration_ms"`
}

func sportToDTO(ctx context.Context, v sport.Sport) sportDTO {
	ctx, span := startSpan(ctx, "httpapi.sportToDTO")
	defer span.End()

	return sportDTO{
		ID:          v.ID,
		Name:        v.Name,
		Slug:        v.Slug,
		Description: v.Description,
	}
}

func profileToDTO(ctx context.Context, v profile.Profile) profileDTO {
	ctx, span := startSpan(ctx, "httpapi.profileToDTO")
	defer span.End()

	birthday := ""
	if !v.Birthday.IsZero() {
		birthday = v.Birthday.UTC().Format("2006-01-02")
	}

	return profileDTO{
		ID:           v.ID,
		UserID:       v.UserID,
		Gender:       v.Gender,
		Birthday:     birthday,
		Height:       v.Height,
		Weight:       v.Weight,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func registrationToDTO(ctx context.Context, v registration.SportRegistration) registrationDTO {
	ctx, span := startSpan(ctx, "httpapi.registrationToDTO")
	defer span.End()

	return registrationDTO{
		ID:           v.ID,
		UserID:       v.UserID,
		SportID:      v.SportID,
		Roles:        v.Roles.Names(),
		IsComplete:   v.IsComplete,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func roleProfileToDTO(ctx context.Context, v roleprofile.Profile) roleProfileDTO {
	ctx, span := startSpan(ctx, "httpapi.roleProfileToDTO")
	defer span.End()

	return roleProfileDTO{
		ID:           v.ID,
		UserID:       v.UserID,
		SportID:      v.SportID,
		Role:         string(v.Role),
		ScopeKind:    string(v.ScopeKind),
		ScopeID:      v.ScopeID,
		IsActive:     v.IsActive,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func summaryToDTO(ctx context.Context, v usecase.RegistrationSummary) registrationSummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.summaryToDTO")
	defer span.End()

	return registrationSummaryDTO{
		RegistrationID: v.RegistrationID,
		SportID:        v.SportID,
		SportName:      v.SportName,
		HeldRoles:      append([]string(nil), v.HeldRoles...),
		MissingRoles:   append([]string(nil), v.MissingRoles...),
		IsComplete:     v.IsComplete,
		NextStepPath:   v.NextStepPath,
	}
}

func sessionStateToDTO(ctx context.Context, v session.State) onboardingStateDTO {
	ctx, span := startSpan(ctx, "httpapi.sessionStateToDTO")
	defer span.End()

	queue := make([]pendingStepDTO, 0, len(v.PendingQueue))
	for _, step := range v.PendingQueue {
		queue = append(queue, pendingStepDTO{
			RegistrationID: step.RegistrationID,
			Role:           step.Role,
		})
	}

	updatedAt := ""
	if !v.UpdatedAt.IsZero() {
		updatedAt = v.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return onboardingStateDTO{
		IsCurrentlyRegistering: v.IsCurrentlyRegistering,
		PendingQueue:           queue,
		GrantedRoles:           append([]string{}, v.GrantedRoles...),
		UpdatedAtUTC:           updatedAt,
	}
}
