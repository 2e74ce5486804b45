package tui

import "errors"

// ErrNoSearcher indicates no web searcher was configured.
var ErrNoSearcher = errors.New("web searcher not configured")
