// Package database owns the SQLite file that backs the todo list
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database, used by tests
const MemoryPath = ":memory:"

// Handle is an open reference to the todo database file.
// The pool is pinned to a single connection, so statements issued through
// one Handle are executed one at a time by the engine.
type Handle struct {
	db   *sql.DB
	path string
}

// DefaultPath returns ~/.todos/todos.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".todos", "todos.db"), nil
}

// Connect opens the database at path, creating the file (and its directory) if absent.
// Connecting twice to the same path reopens the same storage.
func Connect(ctx context.Context, path string) (*Handle, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &StorageError{Op: "connect", Err: fmt.Errorf("failed to create directory: %w", err)}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Op: "connect", Err: err}
	}

	// SQLite benefits from a single writer connection; an in-memory database
	// also only exists for the lifetime of its one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeQuietly(db)
			return nil, &StorageError{Op: "connect", Err: err}
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, &StorageError{Op: "connect", Err: fmt.Errorf("database ping failed: %w", err)}
	}

	slog.Debug("database connected", "path", path)
	return &Handle{db: db, path: path}, nil
}

// Path returns the file the handle was opened on
func (h *Handle) Path() string {
	return h.path
}

// Close releases the underlying connection
func (h *Handle) Close() error {
	if err := h.db.Close(); err != nil {
		return &StorageError{Op: "close", Err: err}
	}
	return nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
