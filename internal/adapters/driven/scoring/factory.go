// Package scoring constructs the relevance scorer selected by
// configuration. Exactly one strategy is active per deployment.
package scoring

import (
	"fmt"

	"github.com/custodia-labs/memora-cli/internal/adapters/driven/scoring/substring"
	"github.com/custodia-labs/memora-cli/internal/adapters/driven/scoring/tfidf"
	"github.com/custodia-labs/memora-cli/internal/analysis/tokens"
	"github.com/custodia-labs/memora-cli/internal/core/domain"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
)

// NewScorer builds the scorer for the configured answer settings. The
// confidence threshold falls back to the strategy default when unset.
func NewScorer(settings domain.AnswerSettings, tokenizer *tokens.Tokenizer) (driven.RelevanceScorer, error) {
	threshold := settings.EffectiveThreshold()
	switch settings.Strategy {
	case domain.ScorerTFIDF:
		return tfidf.NewScorer(tokenizer, threshold), nil
	case domain.ScorerSubstring:
		return substring.NewScorer(tokenizer, threshold), nil
	default:
		return nil, fmt.Errorf("%w: unknown scorer strategy %q", domain.ErrInvalidInput, settings.Strategy)
	}
}
