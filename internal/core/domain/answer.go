package domain

// Answer is the assistant's reply to a question.
type Answer struct {
	// Text is the rendered answer, ready for display.
	Text string `json:"text"`

	// Confident reports whether the best relevance score cleared the
	// configured confidence threshold.
	Confident bool `json:"confident"`

	// FallbackQuery carries the original query when an external web
	// search should be offered. It is nil when the answer is confident,
	// and also nil on internal failure (no fallback is offered for an
	// unvalidated query).
	FallbackQuery *string `json:"fallbackQuery,omitempty"`
}

// ConfidentAnswer builds an answer that needs no fallback.
func ConfidentAnswer(text string) Answer {
	return Answer{Text: text, Confident: true}
}

// FallbackAnswer builds a low-confidence answer carrying the original
// query for external web-search dispatch.
func FallbackAnswer(text, query string) Answer {
	return Answer{Text: text, Confident: false, FallbackQuery: &query}
}

// FailureAnswer builds the fixed apology answer for internal faults.
func FailureAnswer(text string) Answer {
	return Answer{Text: text, Confident: false}
}
