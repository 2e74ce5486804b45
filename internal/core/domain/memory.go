package domain

import (
	"strings"
	"time"
)

// Memory represents a captured web page (or imported document) with
// provenance metadata. It is the canonical persisted record; the JSON
// shape matches the capture export format, so memories round-trip
// through import/export unchanged.
type Memory struct {
	// ID is the unique identifier, assigned at capture time.
	ID string `json:"id"`

	// Title is the human-readable page title.
	Title string `json:"title,omitempty"`

	// URL is the original location the page was captured from.
	URL string `json:"url,omitempty"`

	// Domain is the host the page came from, used for provenance
	// display and plain-text search.
	Domain string `json:"domain,omitempty"`

	// Excerpt is a short summary, human-authored or auto-truncated.
	Excerpt string `json:"excerpt,omitempty"`

	// FullText is the complete captured body text. May be large.
	FullText string `json:"fullText"`

	// CapturedAt is when the page was captured.
	CapturedAt time.Time `json:"timestamp"`
}

// SearchText returns the concatenation of title, excerpt and full text.
// Relevance scoring runs over this combined view.
func (m Memory) SearchText() string {
	var b strings.Builder
	b.WriteString(m.Title)
	b.WriteString(" ")
	b.WriteString(m.Excerpt)
	b.WriteString(" ")
	b.WriteString(m.FullText)
	return b.String()
}

// Body returns the best available body text for snippet extraction:
// the full text when present, the excerpt otherwise.
func (m Memory) Body() string {
	if m.FullText != "" {
		return m.FullText
	}
	return m.Excerpt
}

// ScoredMemory pairs a memory with its relevance score for a query.
// The score has no fixed unit; it is only meaningful for relative
// ordering and against a scorer's confidence threshold.
type ScoredMemory struct {
	Memory Memory
	Score  float64
}
