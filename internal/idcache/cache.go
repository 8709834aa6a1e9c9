// Package idcache persists name to id resolutions in SQLite so repeated
// CLI invocations can skip the resolving search.
package idcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jfmyers9/spotweb/pkg/spotify"
	_ "modernc.org/sqlite"
)

// Cache is a SQLite-backed spotify.IDCache
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

var _ spotify.IDCache = (*Cache)(nil)

// Open opens or creates the cache database at path. Use ":memory:" for a
// throwaway cache.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS resolutions (
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			spotify_id TEXT NOT NULL,
			resolved_at INTEGER NOT NULL,
			PRIMARY KEY (kind, name)
		);

		CREATE INDEX IF NOT EXISTS idx_resolved_at ON resolutions(resolved_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Cache{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// normalize folds names so "Converge" and " converge " share an entry
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the cached id for name, if any
func (c *Cache) Lookup(ctx context.Context, kind spotify.SearchType, name string) (string, bool, error) {
	query := `
		SELECT spotify_id
		FROM resolutions
		WHERE kind = ? AND name = ?
	`

	var id string
	err := c.db.QueryRowContext(ctx, query, kind.String(), normalize(name)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up %s %q: %w", kind, name, err)
	}

	return id, true, nil
}

// Store records a resolution, replacing any earlier one for the same name
func (c *Cache) Store(ctx context.Context, kind spotify.SearchType, name, id string) error {
	query := `
		INSERT INTO resolutions (kind, name, spotify_id, resolved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (kind, name) DO UPDATE SET
			spotify_id = excluded.spotify_id,
			resolved_at = excluded.resolved_at
	`

	if _, err := c.db.ExecContext(ctx, query, kind.String(), normalize(name), id, c.now().Unix()); err != nil {
		return fmt.Errorf("failed to store %s %q: %w", kind, name, err)
	}

	return nil
}

// Cleanup removes resolutions older than maxAge
func (c *Cache) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := c.now().Add(-maxAge).Unix()

	result, err := c.db.ExecContext(ctx, "DELETE FROM resolutions WHERE resolved_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup resolutions: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

// Count returns the number of cached resolutions
func (c *Cache) Count(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM resolutions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count resolutions: %w", err)
	}
	return count, nil
}
