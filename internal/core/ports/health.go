package ports

import "context"

// HealthChecker reports whether a storage dependency behind the award API is reachable.
type HealthChecker interface {
	// Ping returns nil if the dependency answers.
	Ping(ctx context.Context) error
	// Name identifies the dependency in health responses ("postgresql", "redis").
	Name() string
}
