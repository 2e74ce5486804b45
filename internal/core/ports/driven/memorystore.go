package driven

import (
	"context"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

// MemoryStore persists captured memories.
// The store owns capture policy: URL dedup within a time window and
// capacity truncation are enforced here, not in the core.
type MemoryStore interface {
	// GetAll returns the full collection, most recent first.
	GetAll(ctx context.Context) ([]domain.Memory, error)

	// Get retrieves a memory by ID.
	Get(ctx context.Context, id string) (*domain.Memory, error)

	// Add stores a new memory at the front of the collection.
	// Returns domain.ErrDuplicate when the same URL was captured
	// within the dedup window. Truncates the oldest memories when the
	// collection exceeds its capacity bound.
	Add(ctx context.Context, mem *domain.Memory) error

	// Remove deletes a memory by ID.
	Remove(ctx context.Context, id string) error

	// Clear deletes the whole collection.
	Clear(ctx context.Context) error

	// Search returns memories whose title, full text or domain contain
	// the query as a case-insensitive substring. This is the plain,
	// non-ranked fallback path.
	Search(ctx context.Context, query string) ([]domain.Memory, error)
}
