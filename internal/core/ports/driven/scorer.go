package driven

import "github.com/custodia-labs/memora-cli/internal/core/domain"

// RelevanceScorer computes query/memory relevance scores.
// Implementations must be deterministic and pure; scores are only
// comparable within a single strategy.
type RelevanceScorer interface {
	// Score returns one score per memory, aligned with the input
	// order. Scores are >= 0; an empty or all-stop-word query yields
	// all zeros. Callers break ties by input order, so equal scores
	// preserve the collection's most-recent-first ordering.
	Score(query string, memories []domain.Memory) []float64

	// ConfidenceThreshold is the cutoff separating a confident answer
	// from a web-search suggestion, calibrated for this strategy.
	ConfidenceThreshold() float64

	// Strategy identifies the implementation.
	Strategy() domain.ScorerStrategy
}
