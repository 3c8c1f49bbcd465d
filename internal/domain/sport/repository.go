package sport

import "context"

// Repository describes sport catalog persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Sport, error)
	GetByID(ctx context.Context, sportID string) (Sport, bool, error)
}
