// Package memory provides an in-memory MemoryStore for tests and
// ephemeral sessions.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
)

// Ensure MemoryStore implements the interface.
var _ driven.MemoryStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory implementation of driven.MemoryStore.
// Memories are kept most recent first; capture policy (URL dedup,
// capacity truncation) is enforced on Add.
type MemoryStore struct {
	mu       sync.RWMutex
	memories []domain.Memory
	settings domain.StoreSettings
}

// NewMemoryStore creates an empty in-memory store with the given
// capture policy. Zero-value settings disable the corresponding
// policy (no capacity bound, no dedup window).
func NewMemoryStore(settings domain.StoreSettings) *MemoryStore {
	return &MemoryStore{settings: settings}
}

// GetAll returns the full collection, most recent first.
func (s *MemoryStore) GetAll(_ context.Context) ([]domain.Memory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Memory, len(s.memories))
	copy(out, s.memories)
	return out, nil
}

// Get retrieves a memory by ID.
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Memory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.memories {
		if s.memories[i].ID == id {
			mem := s.memories[i]
			return &mem, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Add stores a new memory at the front of the collection, enforcing
// URL dedup and the capacity bound.
func (s *MemoryStore) Add(_ context.Context, mem *domain.Memory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isDuplicate(mem) {
		return domain.ErrDuplicate
	}

	s.memories = append([]domain.Memory{*mem}, s.memories...)

	if max := s.settings.MaxMemories; max > 0 && len(s.memories) > max {
		s.memories = s.memories[:max]
	}
	return nil
}

// Remove deletes a memory by ID.
func (s *MemoryStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.memories {
		if s.memories[i].ID == id {
			s.memories = append(s.memories[:i], s.memories[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Clear deletes the whole collection.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memories = nil
	return nil
}

// Search returns memories whose title, full text or domain contain
// the query, case-insensitively.
func (s *MemoryStore) Search(_ context.Context, query string) ([]domain.Memory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(query)
	var out []domain.Memory
	for i := range s.memories {
		m := &s.memories[i]
		if strings.Contains(strings.ToLower(m.Title), lower) ||
			strings.Contains(strings.ToLower(m.FullText), lower) ||
			strings.Contains(strings.ToLower(m.Domain), lower) {
			out = append(out, *m)
		}
	}
	return out, nil
}

// isDuplicate reports whether the same URL was captured within the
// dedup window. Callers hold the write lock.
func (s *MemoryStore) isDuplicate(mem *domain.Memory) bool {
	if s.settings.DedupWindow <= 0 || mem.URL == "" {
		return false
	}
	cutoff := mem.CapturedAt.Add(-s.settings.DedupWindow)
	for i := range s.memories {
		if s.memories[i].URL == mem.URL && s.memories[i].CapturedAt.After(cutoff) {
			return true
		}
	}
	return false
}
