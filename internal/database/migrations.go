package database

import "context"

const createTodosTable = `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		dueDate TEXT,
		completed INTEGER DEFAULT 0
	)
`

// EnsureSchema creates the todos table if it does not exist yet.
// Safe to call on every startup.
func (h *Handle) EnsureSchema(ctx context.Context) error {
	if _, err := h.db.ExecContext(ctx, createTodosTable); err != nil {
		return &StorageError{Op: "ensure schema", Err: err}
	}
	return nil
}
