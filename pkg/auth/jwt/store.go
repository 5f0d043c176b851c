package jwt

import (
	"context"
	"sync"
	"time"
)

// Store defines the interface for token revocation storage.
// Implementations can use Redis or in-memory storage.
type Store interface {
	// Revoke marks a token as revoked. The entry should live until the
	// token's natural expiration (TTL).
	Revoke(ctx context.Context, token string, expiration time.Duration) error

	// IsRevoked checks if a token has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)

	// Close releases any resources used by the store.
	Close() error
}

// MemoryStore is an in-memory implementation of Store.
// Suitable for single-instance deployments or testing; for distributed
// deployments use the Redis-backed store.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token -> expiration time

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

// MemoryStoreOption is a functional option for MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets the expired-entry cleanup interval.
func WithCleanupInterval(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.cleanupInterval = d
	}
}

// NewMemoryStore creates a new in-memory token store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		tokens:          make(map[string]time.Time),
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.cleanup()

	return s
}

// Revoke marks a token as revoked.
func (s *MemoryStore) Revoke(ctx context.Context, token string, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = time.Now().Add(expiration)
	return nil
}

// IsRevoked checks if a token has been revoked.
func (s *MemoryStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, exists := s.tokens[token]
	if !exists {
		return false, nil
	}
	if time.Now().After(exp) {
		return false, nil
	}
	return true, nil
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	return nil
}

// Size returns the number of revoked tokens in the store.
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}

// cleanup periodically removes expired entries.
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.doCleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) doCleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, exp := range s.tokens {
		if now.After(exp) {
			delete(s.tokens, token)
		}
	}
}

// NoopStore is a no-op implementation of Store, for deployments that do
// not need revocation.
type NoopStore struct{}

// NewNoopStore creates a new no-op store.
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

// Revoke does nothing.
func (s *NoopStore) Revoke(ctx context.Context, token string, expiration time.Duration) error {
	return nil
}

// IsRevoked always returns false.
func (s *NoopStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	return false, nil
}

// Close does nothing.
func (s *NoopStore) Close() error {
	return nil
}
