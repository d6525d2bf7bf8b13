package ports

import "context"

// LoginLimiter tracks failed login attempts per normalized email so the
// auth service can refuse brute-force runs before touching the password
// hash. Implementations are best-effort: a limiter error never blocks a
// login on its own.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
