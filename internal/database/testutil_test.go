package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens an in-memory database with the todos table in place
func setupTestDB(t *testing.T) *Handle {
	t.Helper()
	h, err := Connect(context.Background(), MemoryPath)
	require.NoError(t, err, "Failed to create test database")

	require.NoError(t, h.EnsureSchema(context.Background()), "Failed to ensure schema")

	t.Cleanup(func() {
		_ = h.Close()
	})
	return h
}

// setupTestDBFile returns the path of a database file inside a temp dir.
// Nothing is opened; the caller connects as many times as it needs.
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "todos.db")
}

// insertRaw writes a row bypassing the repository, for decode tests
func insertRaw(t *testing.T, h *Handle, title, description, dueDate any, completed any) {
	t.Helper()
	_, err := h.db.ExecContext(context.Background(),
		"INSERT INTO todos (title, description, dueDate, completed) VALUES (?, ?, ?, ?)",
		title, description, dueDate, completed)
	require.NoError(t, err, "Failed to insert raw row")
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// fixedClock returns a clock frozen at t
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
