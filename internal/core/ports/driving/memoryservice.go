package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

// CaptureInput carries the fields of a page capture. Missing optional
// fields are tolerated and defaulted; only some text is required.
type CaptureInput struct {
	Title    string
	URL      string
	Domain   string
	Excerpt  string
	FullText string
}

// MemoryService manages the memory collection lifecycle.
type MemoryService interface {
	// Capture stores a new memory, assigning its ID and timestamp.
	Capture(ctx context.Context, input CaptureInput) (*domain.Memory, error)

	// List returns all memories, most recent first.
	List(ctx context.Context) ([]domain.Memory, error)

	// Get retrieves a memory by ID.
	Get(ctx context.Context, id string) (*domain.Memory, error)

	// Remove deletes a memory by ID.
	Remove(ctx context.Context, id string) error

	// Clear deletes all memories.
	Clear(ctx context.Context) error

	// Search is the plain substring search over the collection.
	Search(ctx context.Context, query string) ([]domain.Memory, error)

	// Import reads memories from a capture export (JSON object or
	// array) or a plain text file, and stores them. Returns the number
	// of memories imported; duplicates are skipped, not errors.
	Import(ctx context.Context, name string, r io.Reader) (int, error)

	// Export writes the whole collection as indented JSON.
	Export(ctx context.Context, w io.Writer) error
}
