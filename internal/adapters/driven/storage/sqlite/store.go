// Package sqlite provides the persistent MemoryStore backed by
// SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/memora-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/memora-cli/internal/core/domain"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.MemoryStore = (*Store)(nil)

// Store is the SQLite-backed memory store. Capture policy (URL dedup,
// capacity truncation) is enforced on Add inside a transaction.
type Store struct {
	db       *sql.DB
	path     string
	settings domain.StoreSettings
}

// NewStore opens (or creates) the memory database under dataDir.
// If dataDir is empty, defaults to ~/.memora/data/memora.db.
func NewStore(dataDir string, settings domain.StoreSettings) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".memora", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "memora.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:       db,
		path:     dbPath,
		settings: settings,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// GetAll returns the full collection, most recent first.
func (s *Store) GetAll(ctx context.Context) ([]domain.Memory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, url, domain, excerpt, full_text, captured_at
		FROM memories
		ORDER BY captured_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying memories: %w", err)
	}
	defer rows.Close()

	var out []domain.Memory
	for rows.Next() {
		mem, err := scanMemory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *mem)
	}
	return out, rows.Err()
}

// Get retrieves a memory by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Memory, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, url, domain, excerpt, full_text, captured_at
		FROM memories WHERE id = ?
	`, id)

	mem, err := scanMemory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return mem, err
}

// Add stores a new memory, enforcing URL dedup within the window and
// truncating the oldest rows when the collection exceeds capacity.
func (s *Store) Add(ctx context.Context, mem *domain.Memory) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if s.settings.DedupWindow > 0 && mem.URL != "" {
		cutoff := mem.CapturedAt.Add(-s.settings.DedupWindow)
		var n int
		err := tx.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM memories WHERE url = ? AND captured_at > ?
		`, mem.URL, cutoff.UTC().Format(time.RFC3339Nano)).Scan(&n)
		if err != nil {
			return fmt.Errorf("checking duplicates: %w", err)
		}
		if n > 0 {
			return domain.ErrDuplicate
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO memories (id, title, url, domain, excerpt, full_text, captured_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, mem.ID, mem.Title, mem.URL, mem.Domain, mem.Excerpt, mem.FullText,
		mem.CapturedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting memory: %w", err)
	}

	if max := s.settings.MaxMemories; max > 0 {
		_, err = tx.ExecContext(ctx, `
			DELETE FROM memories WHERE id NOT IN (
				SELECT id FROM memories ORDER BY captured_at DESC, rowid DESC LIMIT ?
			)
		`, max)
		if err != nil {
			return fmt.Errorf("truncating collection: %w", err)
		}
	}

	return tx.Commit()
}

// Remove deletes a memory by ID.
func (s *Store) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM memories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting memory: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear deletes the whole collection.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM memories`)
	if err != nil {
		return fmt.Errorf("clearing memories: %w", err)
	}
	return nil
}

// Search returns memories whose title, full text or domain contain
// the query, case-insensitively, most recent first.
func (s *Store) Search(ctx context.Context, query string) ([]domain.Memory, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, url, domain, excerpt, full_text, captured_at
		FROM memories
		WHERE lower(title) LIKE ? ESCAPE '\'
		   OR lower(full_text) LIKE ? ESCAPE '\'
		   OR lower(domain) LIKE ? ESCAPE '\'
		ORDER BY captured_at DESC, rowid DESC
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching memories: %w", err)
	}
	defer rows.Close()

	var out []domain.Memory
	for rows.Next() {
		mem, err := scanMemory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *mem)
	}
	return out, rows.Err()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanMemory reads one memories row.
func scanMemory(row scanner) (*domain.Memory, error) {
	var mem domain.Memory
	var capturedAt string
	err := row.Scan(&mem.ID, &mem.Title, &mem.URL, &mem.Domain,
		&mem.Excerpt, &mem.FullText, &capturedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning memory: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, capturedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing captured_at: %w", err)
	}
	mem.CapturedAt = ts
	return &mem, nil
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		version := migrationVersion(name)
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// migrationVersion parses the numeric prefix of a migration filename.
func migrationVersion(name string) int {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0
	}
	version := 0
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return 0
		}
		version = version*10 + int(r-'0')
	}
	return version
}
