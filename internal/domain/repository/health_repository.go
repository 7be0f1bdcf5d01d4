package repository

import "context"

// HealthChecker reports whether the primary store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
