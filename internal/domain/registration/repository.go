package registration

import "context"

// Repository describes sport registration persistence needs from use
// cases. List results come back in creation order; the onboarding gate
// relies on that to pick a stable "current" registration.
type Repository interface {
	Create(ctx context.Context, r SportRegistration) error
	GetByID(ctx context.Context, registrationID string) (SportRegistration, bool, error)
	GetByUserAndSport(ctx context.Context, userID, sportID string) (SportRegistration, bool, error)
	ListByUser(ctx context.Context, userID string) ([]SportRegistration, error)
	ListIncompleteByUser(ctx context.Context, userID string) ([]SportRegistration, error)
	ListAll(ctx context.Context) ([]SportRegistration, error)
	Update(ctx context.Context, r SportRegistration) error
}
