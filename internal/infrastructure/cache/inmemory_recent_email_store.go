package cache

import (
	"context"
	"sync"

	"github.com/udhaar/backend/internal/domain/identity"
)

// InMemoryRecentEmailStore keeps the recent login emails in memory.
// Suitable for single-instance deployments and tests; use the Redis
// store when the history must survive restarts.
type InMemoryRecentEmailStore struct {
	mu     sync.Mutex
	emails []string
}

// NewInMemoryRecentEmailStore creates an empty in-memory store
func NewInMemoryRecentEmailStore() *InMemoryRecentEmailStore {
	return &InMemoryRecentEmailStore{}
}

// Record moves the email to the front of the list, dropping any earlier
// occurrence, and trims the list to identity.RecentEmailLimit.
func (s *InMemoryRecentEmailStore) Record(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, len(s.emails)+1)
	next = append(next, email)
	for _, existing := range s.emails {
		if existing != email {
			next = append(next, existing)
		}
	}
	if len(next) > identity.RecentEmailLimit {
		next = next[:identity.RecentEmailLimit]
	}
	s.emails = next
	return nil
}

// List returns the remembered emails, most recent first
func (s *InMemoryRecentEmailStore) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.emails))
	copy(out, s.emails)
	return out, nil
}

var _ identity.RecentEmailStore = (*InMemoryRecentEmailStore)(nil)
