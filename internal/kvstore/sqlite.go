package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteKV keeps values in a single table of a SQLite database
type SQLiteKV struct {
	db   *sqlx.DB
	path string
}

// NewSQLiteKV opens (or creates) the database at path and ensures the schema exists
func NewSQLiteKV(path string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	slog.Debug("sqlite store opened", "path", path)
	return &SQLiteKV{db: db, path: path}, nil
}

// Get implements KV
func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set implements KV
func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// Remove implements KV
func (s *SQLiteKV) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Close implements KV
func (s *SQLiteKV) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Location implements KV
func (s *SQLiteKV) Location() string {
	return s.path
}
