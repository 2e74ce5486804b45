// Package capture imports memories from files dropped into an inbox
// directory. It stands in for the browser-side capture flow: anything
// that can write a JSON or text file can feed the collection.
package capture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/memora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/memora-cli/internal/logger"
)

// Watcher watches an inbox directory and imports dropped capture
// files. Imports are rate limited so a bulk drop cannot stampede the
// store.
type Watcher struct {
	inboxDir string
	memories driving.MemoryService
	limiter  *rate.Limiter
}

// NewWatcher creates a watcher over the inbox directory. If inboxDir
// is empty, defaults to ~/.memora/inbox.
func NewWatcher(inboxDir string, memories driving.MemoryService) (*Watcher, error) {
	if inboxDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		inboxDir = filepath.Join(home, ".memora", "inbox")
	}

	if err := os.MkdirAll(inboxDir, 0700); err != nil {
		return nil, fmt.Errorf("creating inbox directory: %w", err)
	}

	return &Watcher{
		inboxDir: inboxDir,
		memories: memories,
		limiter:  rate.NewLimiter(rate.Limit(2), 5),
	}, nil
}

// InboxDir returns the watched directory.
func (w *Watcher) InboxDir() string {
	return w.inboxDir
}

// Run imports any files already in the inbox, then watches for new
// ones until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.drainExisting(ctx); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.inboxDir); err != nil {
		return fmt.Errorf("watching %s: %w", w.inboxDir, err)
	}
	logger.Info("Watching inbox %s", w.inboxDir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			// Renames cover editors that write via a temp file.
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !importable(event.Name) {
				continue
			}
			if err := w.importFile(ctx, event.Name); err != nil {
				logger.Warn("Import of %s failed: %v", event.Name, err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// drainExisting imports files already sitting in the inbox.
func (w *Watcher) drainExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inboxDir)
	if err != nil {
		return fmt.Errorf("reading inbox: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.inboxDir, entry.Name())
		if !importable(path) {
			continue
		}
		if err := w.importFile(ctx, path); err != nil {
			logger.Warn("Import of %s failed: %v", path, err)
		}
	}
	return nil
}

// importFile imports one capture file and removes it on success.
func (w *Watcher) importFile(ctx context.Context, path string) error {
	if err := w.limiter.Wait(ctx); err != nil {
		return err
	}

	if isPage(path) {
		if err := w.capturePage(ctx, path); err != nil {
			return err
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening capture: %w", err)
		}
		defer f.Close()

		n, err := w.memories.Import(ctx, filepath.Base(path), f)
		if err != nil {
			return err
		}
		logger.Info("Imported %d memorie(s) from %s", n, path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing processed capture: %w", err)
	}
	return nil
}

// capturePage stores a saved HTML page as one memory.
func (w *Watcher) capturePage(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading page: %w", err)
	}

	mem, err := w.memories.Capture(ctx, parsePage(filepath.Base(path), content))
	if err != nil {
		return err
	}
	logger.Info("Captured page %q from %s", mem.Title, path)
	return nil
}

// importable reports whether the file looks like a capture drop.
func importable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".txt", ".html", ".htm":
		return true
	default:
		return false
	}
}

// isPage reports whether the file is a saved HTML page.
func isPage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}
