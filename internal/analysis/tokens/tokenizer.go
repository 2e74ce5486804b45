// Package tokens normalises free text into keyword tokens.
// All functions are pure and deterministic.
package tokens

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

// minTokenLen is the exclusive lower bound on token length: tokens of
// this many runes or fewer are dropped as noise.
const minTokenLen = 3

// nonWord matches runs of anything outside word characters and the
// French accented letters. Runs collapse to a single space.
var nonWord = regexp.MustCompile(`[^\wàâäéèêëîïôöùûüç]+`)

// accentFolder maps the accented set to base letters for matching.
var accentFolder = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
)

// Tokenizer splits text into keyword tokens for a language.
type Tokenizer struct {
	stopWords map[string]struct{}
}

// NewTokenizer builds a tokenizer with the built-in stop words for the
// language plus any extra words. Extra words are lowercased.
func NewTokenizer(lang domain.Language, extra ...string) *Tokenizer {
	stop := make(map[string]struct{})
	for _, w := range stopWordsFor(lang) {
		stop[w] = struct{}{}
	}
	for _, w := range extra {
		stop[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopWords: stop}
}

// Tokenize returns the token sequence of the text: lowercased, split
// on non-word runs, with short tokens and stop words removed. The
// sequence keeps duplicates so term frequencies can be counted.
func (t *Tokenizer) Tokenize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	var out []string
	for _, word := range strings.Fields(cleaned) {
		if len([]rune(word)) <= minTokenLen {
			continue
		}
		if _, ok := t.stopWords[word]; ok {
			continue
		}
		out = append(out, word)
	}
	return out
}

// Keywords returns the deduplicated token set of the text, preserving
// first-occurrence order. Used where only presence matters, such as
// query keyword extraction and document-frequency counting.
func (t *Tokenizer) Keywords(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range t.Tokenize(text) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// Fold lowercases text and strips accents from the supported set, so
// that "photosynthèse" and "Photosynthese" compare equal.
func Fold(text string) string {
	return accentFolder.Replace(strings.ToLower(text))
}

// Stem truncates a folded keyword to a match prefix. Long words lose
// their final two runes, which lets inflected and cross-language
// variants of the same term match ("photosynthèse" against
// "photosynthesis"). Short words are kept whole.
func Stem(keyword string) string {
	runes := []rune(Fold(keyword))
	if len(runes) >= 8 {
		return string(runes[:len(runes)-2])
	}
	return string(runes)
}

// MatchKeyword reports whether the text contains the keyword,
// case-insensitively, accent-folded, and tolerant of word endings.
func MatchKeyword(text, keyword string) bool {
	return strings.Contains(Fold(text), Stem(keyword))
}
