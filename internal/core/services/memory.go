package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/memora-cli/internal/logger"
)

// Ensure MemoryService implements the interface.
var _ driving.MemoryService = (*MemoryService)(nil)

// maxCapturedText bounds the full text kept per capture.
const maxCapturedText = 50_000

// MemoryService manages the captured memory collection. Capture
// policy (URL dedup, capacity truncation) lives in the store; this
// service owns identity, defaults and the import/export formats.
type MemoryService struct {
	store driven.MemoryStore
	now   func() time.Time
	newID func() string
}

// NewMemoryService creates a memory service over the store.
func NewMemoryService(store driven.MemoryStore) *MemoryService {
	return &MemoryService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Capture stores a new memory, assigning its ID and timestamp and
// filling defaults for missing optional fields.
func (s *MemoryService) Capture(ctx context.Context, input driving.CaptureInput) (*domain.Memory, error) {
	if strings.TrimSpace(input.FullText) == "" && strings.TrimSpace(input.Excerpt) == "" {
		return nil, fmt.Errorf("%w: capture needs some text", domain.ErrInvalidInput)
	}

	fullText := input.FullText
	if len(fullText) > maxCapturedText {
		// Back up to a rune boundary so the cut never leaves a partial
		// multi-byte sequence behind.
		cut := maxCapturedText
		for cut > 0 && !utf8.RuneStart(fullText[cut]) {
			cut--
		}
		fullText = fullText[:cut]
	}

	mem := &domain.Memory{
		ID:         s.newID(),
		Title:      input.Title,
		URL:        input.URL,
		Domain:     input.Domain,
		Excerpt:    input.Excerpt,
		FullText:   fullText,
		CapturedAt: s.now(),
	}
	if mem.Excerpt == "" {
		mem.Excerpt = truncateExcerpt(fullText)
	}

	if err := s.store.Add(ctx, mem); err != nil {
		return nil, fmt.Errorf("storing capture: %w", err)
	}
	logger.Info("Captured memory %s (%s)", mem.ID, mem.Title)
	return mem, nil
}

// List returns all memories, most recent first.
func (s *MemoryService) List(ctx context.Context) ([]domain.Memory, error) {
	return s.store.GetAll(ctx)
}

// Get retrieves a memory by ID.
func (s *MemoryService) Get(ctx context.Context, id string) (*domain.Memory, error) {
	return s.store.Get(ctx, id)
}

// Remove deletes a memory by ID.
func (s *MemoryService) Remove(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

// Clear deletes all memories.
func (s *MemoryService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Search is the plain substring search over the collection.
func (s *MemoryService) Search(ctx context.Context, query string) ([]domain.Memory, error) {
	return s.store.Search(ctx, query)
}

// importedMemory is the accepted import shape: the capture export
// format with every field optional.
type importedMemory struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Domain   string `json:"domain"`
	Excerpt  string `json:"excerpt"`
	FullText string `json:"fullText"`
}

// Import reads a capture export (JSON object or array) or a plain
// text file and stores the memories it contains. Duplicates are
// skipped and do not count towards the total.
func (s *MemoryService) Import(ctx context.Context, name string, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("reading import: %w", err)
	}

	items := parseImport(name, data)

	imported := 0
	for _, item := range items {
		input := driving.CaptureInput{
			Title:    item.Title,
			URL:      item.URL,
			Domain:   item.Domain,
			Excerpt:  item.Excerpt,
			FullText: item.FullText,
		}
		if input.Title == "" {
			input.Title = name
		}
		if input.Domain == "" {
			input.Domain = "Import local"
		}
		if input.URL == "" {
			input.URL = "file://" + name
		}

		_, err := s.Capture(ctx, input)
		if errors.Is(err, domain.ErrDuplicate) {
			logger.Debug("Import: skipping duplicate %q", input.URL)
			continue
		}
		if err != nil {
			return imported, fmt.Errorf("importing %q: %w", input.Title, err)
		}
		imported++
	}

	logger.Info("Imported %d memorie(s) from %q", imported, name)
	return imported, nil
}

// Export writes the whole collection as indented JSON, most recent
// first, in the capture export format.
func (s *MemoryService) Export(ctx context.Context, w io.Writer) error {
	memories, err := s.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("reading memories: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(memories); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// parseImport interprets the file content: a JSON array, a single
// JSON object, or failing both, one plain text memory.
func parseImport(name string, data []byte) []importedMemory {
	var many []importedMemory
	if err := json.Unmarshal(data, &many); err == nil {
		return many
	}

	var one importedMemory
	if err := json.Unmarshal(data, &one); err == nil {
		return []importedMemory{one}
	}

	return []importedMemory{{
		Title:    name,
		Excerpt:  fmt.Sprintf("Document texte (%d octets)", len(data)),
		FullText: string(data),
	}}
}

// truncateExcerpt derives a short excerpt from the full text.
func truncateExcerpt(fullText string) string {
	const excerptLen = 200
	runes := []rune(strings.TrimSpace(fullText))
	if len(runes) <= excerptLen {
		return string(runes)
	}
	return string(runes[:excerptLen]) + "…"
}
