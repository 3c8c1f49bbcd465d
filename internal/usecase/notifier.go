package usecase

import "context"

// OperatorNotifier pushes configuration defects to operators. The gate
// and the reconciliation job fire it when a registration references a
// sport the role registry does not know; the request itself still fails.
type OperatorNotifier interface {
	NotifyRegistryMisconfigured(ctx context.Context, sportID string, cause error)
}

type NoopOperatorNotifier struct{}

func (NoopOperatorNotifier) NotifyRegistryMisconfigured(context.Context, string, error) {}
