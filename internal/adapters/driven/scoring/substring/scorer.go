// Package substring scores query/memory relevance with fixed weights
// for literal query containment.
package substring

import (
	"strings"

	"github.com/custodia-labs/memora-cli/internal/analysis/tokens"
	"github.com/custodia-labs/memora-cli/internal/core/domain"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
)

// Containment weights. The title is the strongest signal, the full
// text the weakest; individual query words found near the top of the
// memory add a half point each.
const (
	titleWeight    = 3
	excerptWeight  = 2
	fullTextWeight = 1
	wordWeight     = 0.5
)

// Ensure Scorer implements the interface.
var _ driven.RelevanceScorer = (*Scorer)(nil)

// Scorer ranks memories by where the raw query appears verbatim, plus
// per-word hits in the title and excerpt.
type Scorer struct {
	tokenizer *tokens.Tokenizer
	threshold float64
}

// NewScorer creates a substring scorer. A threshold of zero selects
// the strategy default.
func NewScorer(tokenizer *tokens.Tokenizer, threshold float64) *Scorer {
	if threshold <= 0 {
		threshold = domain.ScorerSubstring.DefaultThreshold()
	}
	return &Scorer{tokenizer: tokenizer, threshold: threshold}
}

// Score returns one score per memory, aligned with the input order.
func (s *Scorer) Score(query string, memories []domain.Memory) []float64 {
	scores := make([]float64, len(memories))

	rawQuery := strings.ToLower(strings.TrimSpace(query))
	if rawQuery == "" {
		return scores
	}
	keywords := s.tokenizer.Keywords(query)

	for i := range memories {
		mem := &memories[i]
		var score float64

		if strings.Contains(strings.ToLower(mem.Title), rawQuery) {
			score += titleWeight
		}
		if strings.Contains(strings.ToLower(mem.Excerpt), rawQuery) {
			score += excerptWeight
		}
		if strings.Contains(strings.ToLower(mem.FullText), rawQuery) {
			score += fullTextWeight
		}

		head := mem.Title + " " + mem.Excerpt
		for _, kw := range keywords {
			if tokens.MatchKeyword(head, kw) {
				score += wordWeight
			}
		}

		scores[i] = score
	}
	return scores
}

// ConfidenceThreshold returns the calibrated cutoff.
func (s *Scorer) ConfidenceThreshold() float64 {
	return s.threshold
}

// Strategy identifies the implementation.
func (s *Scorer) Strategy() domain.ScorerStrategy {
	return domain.ScorerSubstring
}
