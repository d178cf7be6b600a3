package lease

import (
	"context"
	"sync"
	"time"
)

// InMemoryLeaseStore implements Store with a process-local map. Suitable for
// single-instance deployments and testing. Leases are not shared across
// processes, so a separate sync CLI will not see leases held by the server.
type InMemoryLeaseStore struct {
	mu     sync.Mutex
	leases map[string]time.Time
	now    func() time.Time
}

// NewInMemoryLeaseStore creates a new in-memory lease store
func NewInMemoryLeaseStore() *InMemoryLeaseStore {
	return &InMemoryLeaseStore{
		leases: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Acquire takes the lease if it is free or expired
func (s *InMemoryLeaseStore) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expiry, held := s.leases[key]; held && s.now().Before(expiry) {
		return false, nil
	}
	s.leases[key] = s.now().Add(ttl)
	return true, nil
}

// Release frees the lease
func (s *InMemoryLeaseStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leases, key)
	return nil
}

// Close is a no-op for the in-memory store
func (s *InMemoryLeaseStore) Close() error {
	return nil
}
