package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/profile"
	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/session"
	"github.com/leaguedesk/leaguedesk/internal/domain/user"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
)

// RouteResolver builds the paths the gate redirects to and recognizes
// the whitelist of pages that resolve a pending state.
type RouteResolver interface {
	ProfileCreatePath() string
	RegistrationCreatePath() string
	LogoutPath() string
	RoleProfileCreatePath(registrationID string, r role.Role) string
	IsRoleProfileCreatePath(path string) bool
}

// Decision is the gate's answer for one request: pass it through or
// redirect it to the single next setup step.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allowDecision() Decision {
	return Decision{Allow: true}
}

func redirectDecision(target string) Decision {
	return Decision{RedirectTo: target}
}

// OnboardingService is the per-request gate. It recomputes the user's
// onboarding state from storage on every call and keeps the per-session
// flags in the session store in step with it.
type OnboardingService struct {
	profiles      profile.Repository
	registrations registration.Repository
	resolver      *RegistrationResolver
	sessions      session.Store
	routes        RouteResolver
	notifier      OperatorNotifier
	logger        *logging.Logger
	now           func() time.Time
}

func NewOnboardingService(
	profiles profile.Repository,
	registrations registration.Repository,
	resolver *RegistrationResolver,
	sessions session.Store,
	routes RouteResolver,
	notifier OperatorNotifier,
	logger *logging.Logger,
) *OnboardingService {
	if notifier == nil {
		notifier = NoopOperatorNotifier{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &OnboardingService{
		profiles:      profiles,
		registrations: registrations,
		resolver:      resolver,
		sessions:      sessions,
		routes:        routes,
		notifier:      notifier,
		logger:        logger,
		now:           time.Now,
	}
}

// bypassPrefixes lists traffic the gate ignores entirely: assets,
// operational endpoints, and the admin panel.
var bypassPrefixes = []string{"/debug/", "/admin/", "/static/", "/healthz", "/docs"}

func bypassed(path string) bool {
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (s *OnboardingService) whitelisted(path string) bool {
	switch path {
	case s.routes.LogoutPath(), s.routes.ProfileCreatePath(), s.routes.RegistrationCreatePath():
		return true
	}
	return s.routes.IsRoleProfileCreatePath(path)
}

// ComputeRoutingDecision decides whether the request may proceed or must
// be redirected to the next setup step. Registry misconfiguration
// surfaces as an error after notifying operators; the caller answers
// with a generic failure and never retries.
func (s *OnboardingService) ComputeRoutingDecision(ctx context.Context, principal user.Principal, path string) (Decision, error) {
	ctx, span := startUsecaseSpan(ctx, "OnboardingService.ComputeRoutingDecision")
	defer span.End()

	if principal.UserID == "" {
		return Decision{}, fmt.Errorf("%w: principal is required", ErrUnauthorized)
	}
	if bypassed(path) {
		return allowDecision(), nil
	}

	// Whitelisted pages resolve pending states; they must stay reachable
	// while the state is still pending, or every redirect would loop.
	if s.whitelisted(path) {
		return allowDecision(), nil
	}

	state, _, err := s.sessions.Get(ctx, principal.SessionID)
	if err != nil {
		return Decision{}, fmt.Errorf("load session state: %w", err)
	}

	hasProfile, err := s.profiles.Exists(ctx, principal.UserID)
	if err != nil {
		return Decision{}, fmt.Errorf("check profile existence: %w", err)
	}
	if !hasProfile {
		if err := s.putState(ctx, principal.SessionID, state, true, nil, state.GrantedRoles); err != nil {
			return Decision{}, err
		}
		return redirectDecision(s.routes.ProfileCreatePath()), nil
	}

	regs, err := s.registrations.ListByUser(ctx, principal.UserID)
	if err != nil {
		return Decision{}, fmt.Errorf("list registrations: %w", err)
	}
	if len(regs) == 0 {
		if err := s.putState(ctx, principal.SessionID, state, true, nil, state.GrantedRoles); err != nil {
			return Decision{}, err
		}
		return redirectDecision(s.routes.RegistrationCreatePath()), nil
	}

	current, currentRole, queue, err := s.nextStep(ctx, regs)
	if err != nil {
		return Decision{}, err
	}

	if current != nil {
		if err := s.putState(ctx, principal.SessionID, state, true, queue, state.GrantedRoles); err != nil {
			return Decision{}, err
		}
		return redirectDecision(s.routes.RoleProfileCreatePath(current.ID, currentRole)), nil
	}

	granted := grantedRoles(regs)
	if err := s.putState(ctx, principal.SessionID, state, false, nil, granted); err != nil {
		return Decision{}, err
	}
	return allowDecision(), nil
}

// nextStep walks the user's incomplete registrations in creation order.
// The first one with a pending role becomes the current step; the rest
// are queued. Registrations found to be fully covered are marked
// complete on the spot, the computation being idempotent.
func (s *OnboardingService) nextStep(ctx context.Context, regs []registration.SportRegistration) (*registration.SportRegistration, role.Role, []session.PendingStep, error) {
	var current *registration.SportRegistration
	var currentRole role.Role
	var queue []session.PendingStep

	for i := range regs {
		reg := &regs[i]
		if reg.IsComplete {
			continue
		}

		next, pending, err := s.resolver.NextPendingRole(ctx, *reg)
		if err != nil {
			s.alertIfMisconfigured(ctx, reg.SportID, err)
			return nil, "", nil, err
		}

		if !pending {
			reg.IsComplete = true
			reg.UpdatedAt = s.now().UTC()
			if err := s.registrations.Update(ctx, *reg); err != nil {
				return nil, "", nil, fmt.Errorf("mark registration complete: %w", err)
			}
			continue
		}

		if current == nil {
			current = reg
			currentRole = next
			continue
		}
		queue = append(queue, session.PendingStep{
			RegistrationID: reg.ID,
			Role:           next.String(),
		})
	}

	return current, currentRole, queue, nil
}

// grantedRoles is the deduplicated union of held roles across complete
// registrations, in first-seen order.
func grantedRoles(regs []registration.SportRegistration) []string {
	seen := make(map[role.Role]struct{})
	var out []string
	for _, reg := range regs {
		if !reg.IsComplete {
			continue
		}
		for _, rr := range reg.Roles.Roles() {
			if _, dup := seen[rr]; dup {
				continue
			}
			seen[rr] = struct{}{}
			out = append(out, rr.String())
		}
	}
	return out
}

func (s *OnboardingService) putState(ctx context.Context, sessionID string, prev session.State, registering bool, queue []session.PendingStep, granted []string) error {
	next := prev.Clone()
	next.IsCurrentlyRegistering = registering
	next.PendingQueue = queue
	next.GrantedRoles = granted
	next.UpdatedAt = s.now().UTC()

	if err := s.sessions.Put(ctx, sessionID, next); err != nil {
		return fmt.Errorf("store session state: %w", err)
	}
	return nil
}

func (s *OnboardingService) alertIfMisconfigured(ctx context.Context, sportID string, err error) {
	if !isRegistryMisconfigured(err) {
		return
	}
	s.logger.ErrorContext(ctx, "role registry misconfigured", "sport_id", sportID, "error", err)
	s.notifier.NotifyRegistryMisconfigured(ctx, sportID, err)
}

// SessionState exposes the stored onboarding state, e.g. for the status
// endpoint and role-gated pages reading granted_roles.
func (s *OnboardingService) SessionState(ctx context.Context, principal user.Principal) (session.State, error) {
	ctx, span := startUsecaseSpan(ctx, "OnboardingService.SessionState")
	defer span.End()

	if principal.UserID == "" {
		return session.State{}, fmt.Errorf("%w: principal is required", ErrUnauthorized)
	}

	state, _, err := s.sessions.Get(ctx, principal.SessionID)
	if err != nil {
		return session.State{}, fmt.Errorf("load session state: %w", err)
	}
	return state, nil
}

// Logout clears the per-session onboarding state.
func (s *OnboardingService) Logout(ctx context.Context, principal user.Principal) error {
	ctx, span := startUsecaseSpan(ctx, "OnboardingService.Logout")
	defer span.End()

	if principal.SessionID == "" {
		return fmt.Errorf("%w: session is required", ErrUnauthorized)
	}
	if err := s.sessions.Delete(ctx, principal.SessionID); err != nil {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}
