package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
)

// RegistrationSummary is the "what's left to do" view for one
// registration.
type RegistrationSummary struct {
	RegistrationID string
	SportID        string
	SportName      string
	HeldRoles      []string
	MissingRoles   []string
	IsComplete     bool
	NextStepPath   string
}

const summaryConcurrency = 4

// SummaryService assembles per-registration progress. Registrations are
// resolved concurrently; results keep repository order.
type SummaryService struct {
	registrations registration.Repository
	sports        sport.Repository
	resolver      *RegistrationResolver
	routes        RouteResolver
}

func NewSummaryService(
	registrations registration.Repository,
	sports sport.Repository,
	resolver *RegistrationResolver,
	routes RouteResolver,
) *SummaryService {
	return &SummaryService{
		registrations: registrations,
		sports:        sports,
		resolver:      resolver,
		routes:        routes,
	}
}

func (s *SummaryService) ForUser(ctx context.Context, userID string) ([]RegistrationSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "SummaryService.ForUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	regs, err := s.registrations.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	out := make([]RegistrationSummary, len(regs))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(summaryConcurrency)
	for i, reg := range regs {
		i, reg := i, reg
		p.Go(func(ctx context.Context) error {
			summary, err := s.build(ctx, reg)
			if err != nil {
				return err
			}
			out[i] = summary
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *SummaryService) build(ctx context.Context, reg registration.SportRegistration) (RegistrationSummary, error) {
	related, err := s.resolver.RelatedRoleObjects(ctx, reg)
	if err != nil {
		return RegistrationSummary{}, err
	}

	missing := make([]string, 0)
	for _, rr := range role.Canonical {
		profiles, held := related[rr]
		if held && profiles == nil {
			missing = append(missing, rr.String())
		}
	}

	summary := RegistrationSummary{
		RegistrationID: reg.ID,
		SportID:        reg.SportID,
		HeldRoles:      reg.Roles.Names(),
		MissingRoles:   missing,
		IsComplete:     len(missing) == 0,
	}

	if found, exists, err := s.sports.GetByID(ctx, reg.SportID); err != nil {
		return RegistrationSummary{}, fmt.Errorf("get sport by id: %w", err)
	} else if exists {
		summary.SportName = found.Name
	}

	if len(missing) > 0 {
		next, _ := role.Parse(missing[0])
		summary.NextStepPath = s.routes.RoleProfileCreatePath(reg.ID, next)
	}

	return summary, nil
}
