package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
)

// ReconcileReport summarizes one completion sweep.
type ReconcileReport struct {
	Scanned  int
	Updated  int
	Failed   int
	Duration time.Duration
}

// ReconcileService recomputes is_complete across all registrations.
// Admin tooling and bulk imports write the role ledger without going
// through the services, so the flag can drift; the sweep re-derives it
// from the resolver. Registry misconfiguration on one registration is
// alerted and counted, never retried, and does not stop the sweep.
type ReconcileService struct {
	registrations registration.Repository
	resolver      *RegistrationResolver
	notifier      OperatorNotifier
	logger        *logging.Logger
	workers       int
	now           func() time.Time
}

func NewReconcileService(
	registrations registration.Repository,
	resolver *RegistrationResolver,
	notifier OperatorNotifier,
	logger *logging.Logger,
	workers int,
) *ReconcileService {
	if notifier == nil {
		notifier = NoopOperatorNotifier{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if workers <= 0 {
		workers = 8
	}

	return &ReconcileService{
		registrations: registrations,
		resolver:      resolver,
		notifier:      notifier,
		logger:        logger,
		workers:       workers,
		now:           time.Now,
	}
}

func (s *ReconcileService) Run(ctx context.Context) (ReconcileReport, error) {
	ctx, span := startUsecaseSpan(ctx, "ReconcileService.Run")
	defer span.End()

	started := s.now()

	regs, err := s.registrations.ListAll(ctx)
	if err != nil {
		return ReconcileReport{}, fmt.Errorf("list registrations: %w", err)
	}

	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return ReconcileReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var updated, failed atomic.Int64
	var wg sync.WaitGroup
	for i := range regs {
		reg := regs[i]
		wg.Add(1)
		submitErr := workerPool.Submit(func() {
			defer wg.Done()
			changed, err := s.reconcileOne(ctx, reg)
			if err != nil {
				failed.Add(1)
				return
			}
			if changed {
				updated.Add(1)
			}
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
		}
	}
	wg.Wait()

	report := ReconcileReport{
		Scanned:  len(regs),
		Updated:  int(updated.Load()),
		Failed:   int(failed.Load()),
		Duration: s.now().Sub(started),
	}

	s.logger.InfoContext(ctx, "completion reconciliation finished",
		"scanned", report.Scanned,
		"updated", report.Updated,
		"failed", report.Failed,
		"duration", report.Duration.String(),
	)

	return report, nil
}

func (s *ReconcileService) reconcileOne(ctx context.Context, reg registration.SportRegistration) (bool, error) {
	_, pending, err := s.resolver.NextPendingRole(ctx, reg)
	if err != nil {
		if isRegistryMisconfigured(err) {
			s.notifier.NotifyRegistryMisconfigured(ctx, reg.SportID, err)
		}
		s.logger.ErrorContext(ctx, "reconcile registration failed",
			"registration_id", reg.ID,
			"error", err,
		)
		return false, err
	}

	complete := !pending
	if complete == reg.IsComplete {
		return false, nil
	}

	reg.IsComplete = complete
	reg.UpdatedAt = s.now().UTC()
	if err := s.registrations.Update(ctx, reg); err != nil {
		s.logger.ErrorContext(ctx, "reconcile update failed",
			"registration_id", reg.ID,
			"error", err,
		)
		return false, fmt.Errorf("update registration: %w", err)
	}

	return true, nil
}
