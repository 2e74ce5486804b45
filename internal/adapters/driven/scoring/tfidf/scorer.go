// Package tfidf scores query/memory relevance with term-frequency ×
// inverse-document-frequency weighting.
package tfidf

import (
	"math"
	"strings"

	"github.com/custodia-labs/memora-cli/internal/analysis/tokens"
	"github.com/custodia-labs/memora-cli/internal/core/domain"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
)

// titleBonus is the flat bonus when the raw lowercased query is a
// literal substring of the memory title.
const titleBonus = 0.5

// Ensure Scorer implements the interface.
var _ driven.RelevanceScorer = (*Scorer)(nil)

// Scorer ranks memories by summed TF×IDF over the query's token set.
// IDF is computed per query over the collection snapshot, counting
// document frequency for the query's tokens only: cost stays at
// O(query tokens × memories) instead of the full vocabulary.
type Scorer struct {
	tokenizer *tokens.Tokenizer
	threshold float64
}

// NewScorer creates a TF-IDF scorer. A threshold of zero selects the
// strategy default.
func NewScorer(tokenizer *tokens.Tokenizer, threshold float64) *Scorer {
	if threshold <= 0 {
		threshold = domain.ScorerTFIDF.DefaultThreshold()
	}
	return &Scorer{tokenizer: tokenizer, threshold: threshold}
}

// Score returns one score per memory, aligned with the input order.
func (s *Scorer) Score(query string, memories []domain.Memory) []float64 {
	scores := make([]float64, len(memories))

	keywords := s.tokenizer.Keywords(query)
	if len(keywords) == 0 {
		return scores
	}

	// Tokenise each memory once; both DF and TF read from this.
	docTokens := make([][]string, len(memories))
	for i := range memories {
		docTokens[i] = s.tokenizer.Tokenize(memories[i].SearchText())
	}

	idf := inverseDocFrequency(keywords, docTokens)

	rawQuery := strings.ToLower(strings.TrimSpace(query))
	for i := range memories {
		var score float64
		for _, kw := range keywords {
			tf := termFrequency(kw, docTokens[i])
			score += float64(tf) * idf[kw]
		}
		if strings.Contains(strings.ToLower(memories[i].Title), rawQuery) {
			score += titleBonus
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
	return domain.ScorerTFIDF
}

// inverseDocFrequency computes log((N+1)/(df+1)) + 1 for each keyword
// over the tokenised collection.
func inverseDocFrequency(keywords []string, docTokens [][]string) map[string]float64 {
	n := float64(len(docTokens))
	idf := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		df := 0
		for _, doc := range docTokens {
			if termFrequency(kw, doc) > 0 {
				df++
			}
		}
		idf[kw] = math.Log((n+1)/float64(df+1)) + 1
	}
	return idf
}

// termFrequency counts tokens matching the keyword. Matching is
// accent-folded and ending-tolerant so inflected variants count.
func termFrequency(keyword string, docTokens []string) int {
	stem := tokens.Stem(keyword)
	count := 0
	for _, tok := range docTokens {
		if strings.HasPrefix(tokens.Fold(tok), stem) {
			count++
		}
	}
	return count
}
