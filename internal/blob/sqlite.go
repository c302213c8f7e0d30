package blob

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite stores blobs in a single-file database. Useful when the dashboard
// runs on one box and no object store is available.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and if needed creates) the database at dbPath and applies
// migrations.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite db path required")
	}
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) ReadText(ctx context.Context, name string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM blobs WHERE name = ?`, name).Scan(&content)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read blob %s: %w", name, err)
	}
	return content, nil
}

func (s *SQLite) WriteText(ctx context.Context, name string, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blobs (name, content, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		name, content, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write blob %s: %w", name, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
