package driven

import "context"

// WebSearcher dispatches a query to an external search engine,
// typically by opening the system browser. Building and opening the
// URL is adapter territory; the core only hands over the fallback
// query after the user accepts the suggestion.
type WebSearcher interface {
	// Open launches a web search for the query.
	Open(ctx context.Context, query string) error

	// URL returns the search URL that Open would launch.
	URL(query string) string
}
