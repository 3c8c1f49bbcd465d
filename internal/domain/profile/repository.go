package profile

import "context"

// Repository describes profile persistence needs from use cases. The
// onboarding gate only calls Exists; Create backs the profile setup page.
type Repository interface {
	Exists(ctx context.Context, userID string) (bool, error)
	GetByUserID(ctx context.Context, userID string) (Profile, bool, error)
	Create(ctx context.Context, p Profile) error
}
