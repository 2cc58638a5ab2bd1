package shot

import "context"

// Repository loads the shot dataset. Implementations return a fresh slice on
// every call; callers may not rely on sharing it with other callers.
type Repository interface {
	List(ctx context.Context) ([]Shot, error)
}
