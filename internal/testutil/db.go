package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB opens an in-memory database with the full schema.
// The handle is closed when the test ends.
func SetupTestDB(t *testing.T) *database.Handle {
	t.Helper()
	h, err := database.Connect(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := h.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		_ = h.Close()
	})
	return h
}

// CreateTestTodo inserts a todo due a day from now and returns it
func CreateTestTodo(t *testing.T, h *database.Handle, title string) *models.Todo {
	t.Helper()
	due := time.Now().Add(24 * time.Hour)
	todo, err := database.NewTodoRepo(h).Create(context.Background(), models.NewTodo{
		Title:   title,
		DueDate: &due,
	})
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	return todo
}
