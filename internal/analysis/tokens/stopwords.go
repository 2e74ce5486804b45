package tokens

import "github.com/custodia-labs/memora-cli/internal/core/domain"

// Function words dropped during tokenisation. Interrogative words are
// included: they carry the question's shape, not its topic, and the
// intent classifier has already consumed them.
var (
	frenchStopWords = []string{
		"le", "la", "les", "de", "des", "du", "un", "une",
		"et", "ou", "mais", "dans", "pour", "avec", "sur", "par",
		"est", "sont", "était", "étaient", "être", "avoir",
		"que", "qui", "quoi", "comment", "pourquoi", "quand", "où",
		"quel", "quelle", "quels", "quelles", "cette", "cela",
	}

	englishStopWords = []string{
		"the", "a", "an", "of", "and", "or", "but",
		"in", "on", "for", "with", "at", "by", "from",
		"is", "are", "was", "were", "be", "been", "have", "has",
		"that", "this", "these", "those", "it", "its",
		"what", "how", "why", "when", "where", "who", "which",
	}
)

// stopWordsFor returns the built-in stop-word list for a language.
// Unknown languages fall back to French, the historical default.
func stopWordsFor(lang domain.Language) []string {
	switch lang {
	case domain.LanguageEnglish:
		return englishStopWords
	default:
		return frenchStopWords
	}
}
