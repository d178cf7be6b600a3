package lease

import (
	"context"
	"time"
)

// Store provides mutual exclusion for sync runs. One lease is held per data
// type while its batch is in flight, so overlapping schedules and manual
// invocations cannot write the same table concurrently.
type Store interface {
	// Acquire attempts to take the lease. Returns true if the lease was
	// taken, false if another holder already has it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release frees the lease so the next run can take it.
	Release(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
