package cart

import (
	"context"
	"sync"
	"time"

	"detailwave.be/booking-api/pkg/models"
)

type memoryEntry struct {
	cart      *models.Cart
	expiresAt time.Time
}

// MemoryStore keeps carts in process memory. Default backend: the funnel is
// a single stateless binary and carts are allowed to die with it.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return models.NewCart(sessionID), nil
	}

	// Hand out a copy so callers can mutate freely before saving back.
	clone := *entry.cart
	clone.Items = append([]models.LineItem(nil), entry.cart.Items...)
	return &clone, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, c *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *c
	clone.Items = append([]models.LineItem(nil), c.Items...)
	s.entries[sessionID] = memoryEntry{
		cart:      &clone,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.evictExpiredLocked()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) evictExpiredLocked() {
	now := time.Now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
