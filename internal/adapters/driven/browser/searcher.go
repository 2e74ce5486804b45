// Package browser dispatches fallback web searches to the system
// browser.
package browser

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/memora-cli/internal/logger"
)

// Ensure Searcher implements the interface.
var _ driven.WebSearcher = (*Searcher)(nil)

// Searcher builds a search-engine URL for a query and opens it with
// the OS default browser.
type Searcher struct {
	engineURL string
	open      func(ctx context.Context, url string) error
}

// NewSearcher creates a web searcher. engineURL is the prefix the
// URL-encoded query is appended to, e.g.
// "https://www.google.com/search?q=".
func NewSearcher(engineURL string) *Searcher {
	return &Searcher{engineURL: engineURL, open: openURL}
}

// URL returns the search URL for the query.
func (s *Searcher) URL(query string) string {
	return s.engineURL + url.QueryEscape(query)
}

// Open launches a web search for the query in the default browser.
func (s *Searcher) Open(ctx context.Context, query string) error {
	target := s.URL(query)
	logger.Info("Opening web search: %s", target)
	return s.open(ctx, target)
}

// openURL opens a URL with the OS-specific command.
func openURL(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
