package ports

import "context"

// HealthChecker reports the health of one readiness dependency: the SQL pool
// or the PDF renderer.
type HealthChecker interface {
	// Name keys the checker in the readiness response.
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give up
	// when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered HealthChecker for /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
