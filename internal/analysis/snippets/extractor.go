// Package snippets selects the passages of a text most relevant to a
// set of query keywords.
package snippets

import (
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/memora-cli/internal/analysis/tokens"
)

const (
	// minSentenceLen filters out fragments left by the sentence split.
	minSentenceLen = 20

	// shortTextLen is the bound below which a text is returned whole,
	// without sentence splitting.
	shortTextLen = 100

	// densePassageLen marks a sentence as information-dense.
	densePassageLen = 100

	// leadSentences is how many opening sentences get the lead bonus.
	leadSentences = 3

	// dedupPrefixLen is the prefix compared when deduplicating
	// near-identical sentences.
	dedupPrefixLen = 100

	// DefaultMax is the default snippet limit per answer.
	DefaultMax = 3
)

// sentenceDelim splits on runs of sentence terminators.
var sentenceDelim = regexp.MustCompile(`[.!?]+`)

// scored is a sentence with its relevance for the current keywords.
type scored struct {
	text      string
	relevance float64
}

// Extract returns up to max sentences from the text, ordered by
// descending relevance to the keywords. Texts shorter than 100
// characters are returned whole; an empty text yields nothing.
func Extract(text string, keywords []string, max int) []string {
	if max <= 0 {
		max = DefaultMax
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if len([]rune(trimmed)) < shortTextLen {
		return []string{trimmed}
	}

	sentences := splitSentences(trimmed)

	var candidates []scored
	for i, sentence := range sentences {
		rel := relevance(sentence, keywords, i)
		if rel > 0 {
			candidates = append(candidates, scored{text: sentence, relevance: rel})
		}
	}

	// Stable: equal relevance keeps original sentence order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].relevance > candidates[j].relevance
	})

	seen := make(map[string]struct{})
	var out []string
	for _, c := range candidates {
		prefix := dedupKey(c.text)
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		out = append(out, c.text)
		if len(out) == max {
			break
		}
	}
	return out
}

// splitSentences cuts the text on runs of `.`, `!` and `?` and drops
// fragments shorter than the noise threshold.
func splitSentences(text string) []string {
	var out []string
	for _, part := range sentenceDelim.Split(text, -1) {
		s := strings.TrimSpace(part)
		if len([]rune(s)) > minSentenceLen {
			out = append(out, s)
		}
	}
	return out
}

// relevance scores one sentence against the keywords:
// +2 per distinct matched keyword, plus the match count when more than
// one keyword matched, +1 for information-dense sentences, +0.5 when
// the sentence opens the document.
func relevance(sentence string, keywords []string, index int) float64 {
	matched := 0
	for _, kw := range keywords {
		if tokens.MatchKeyword(sentence, kw) {
			matched++
		}
	}

	var rel float64
	rel += float64(matched) * 2
	if matched > 1 {
		rel += float64(matched)
	}
	if rel == 0 {
		return 0
	}
	if len([]rune(sentence)) > densePassageLen {
		rel++
	}
	if index < leadSentences {
		rel += 0.5
	}
	return rel
}

// dedupKey returns the comparison prefix for deduplication.
func dedupKey(sentence string) string {
	runes := []rune(sentence)
	if len(runes) > dedupPrefixLen {
		runes = runes[:dedupPrefixLen]
	}
	return string(runes)
}
