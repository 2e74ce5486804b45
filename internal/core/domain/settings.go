package domain

import "time"

const unknownDescription = "Unknown"

// ScorerStrategy selects which relevance scoring implementation is
// active. Exactly one strategy runs per deployment; it is chosen at
// configuration time, never mixed.
type ScorerStrategy string

// Available scorer strategies.
const (
	// ScorerTFIDF weights query terms by term frequency and inverse
	// document frequency over the collection.
	ScorerTFIDF ScorerStrategy = "tfidf"

	// ScorerSubstring awards fixed weights for literal query
	// containment in title, excerpt and full text.
	ScorerSubstring ScorerStrategy = "substring"
)

// IsValid returns true if the strategy is recognised.
func (s ScorerStrategy) IsValid() bool {
	switch s {
	case ScorerTFIDF, ScorerSubstring:
		return true
	default:
		return false
	}
}

// DefaultThreshold returns the confidence cutoff calibrated for this
// strategy. Scores are not comparable across strategies, so each
// carries its own default.
func (s ScorerStrategy) DefaultThreshold() float64 {
	switch s {
	case ScorerTFIDF:
		return 0.3
	case ScorerSubstring:
		return 1.5
	default:
		return 0
	}
}

// String returns the string representation.
func (s ScorerStrategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy.
func (s ScorerStrategy) Description() string {
	switch s {
	case ScorerTFIDF:
		return "TF-IDF (term frequency weighted by corpus rarity)"
	case ScorerSubstring:
		return "Substring (fixed weights for literal containment)"
	default:
		return unknownDescription
	}
}

// Language identifies the question language for tokenisation and
// intent classification.
type Language string

// Supported languages.
const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// IsValid returns true if the language is supported.
func (l Language) IsValid() bool {
	switch l {
	case LanguageFrench, LanguageEnglish:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// StoreSettings holds memory store policy.
type StoreSettings struct {
	// MaxMemories bounds the collection size. When an add pushes the
	// collection over this bound, the oldest memories are truncated.
	MaxMemories int

	// DedupWindow rejects re-captures of the same URL within this
	// duration of the previous capture.
	DedupWindow time.Duration
}

// AnswerSettings holds retrieval and answer-synthesis policy.
type AnswerSettings struct {
	// Strategy is the active relevance scorer.
	Strategy ScorerStrategy

	// ConfidenceThreshold separates an authoritative answer from a
	// web-search suggestion. Zero means the strategy default.
	ConfidenceThreshold float64

	// MaxSnippets bounds how many passages an answer may cite.
	MaxSnippets int

	// Language selects stop words and intent patterns.
	Language Language
}

// EffectiveThreshold returns the configured threshold, falling back to
// the strategy default when unset.
func (s AnswerSettings) EffectiveThreshold() float64 {
	if s.ConfidenceThreshold > 0 {
		return s.ConfidenceThreshold
	}
	return s.Strategy.DefaultThreshold()
}

// DefaultStoreSettings mirrors the historical capture defaults.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		MaxMemories: 500,
		DedupWindow: 5 * time.Minute,
	}
}

// DefaultAnswerSettings returns the canonical answer configuration.
func DefaultAnswerSettings() AnswerSettings {
	return AnswerSettings{
		Strategy:    ScorerTFIDF,
		MaxSnippets: 3,
		Language:    LanguageFrench,
	}
}
