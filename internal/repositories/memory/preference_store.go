package memory

import (
	"context"
	"sync"

	portsrepo "github.com/SscSPs/storefront_pricing/internal/core/ports/repositories"
)

// PreferenceStore keeps preferences in process memory. Values are lost on restart.
type PreferenceStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewPreferenceStore creates an empty in-memory store.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{items: make(map[string]string)}
}

// Ensure implementation matches interface
var _ portsrepo.PreferenceStore = (*PreferenceStore)(nil)

// GetItem returns the value stored under key.
func (s *PreferenceStore) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem stores value under key.
func (s *PreferenceStore) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}
