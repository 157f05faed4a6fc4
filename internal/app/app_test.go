package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/thenoetrevino/todos/internal/database"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
	"github.com/thenoetrevino/todos/internal/testutil"
)

func TestNew(t *testing.T) {
	h := testutil.SetupTestDB(t)

	app := New(database.NewRepository(h))

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}

	if app.TodoService == nil {
		t.Error("Expected TodoService to be initialized")
	}

	if app.Repo() == nil {
		t.Error("Expected Repo to be set")
	}

	if app.Logger() != slog.Default() {
		t.Error("Expected default logger when none is given")
	}
}

func TestWithLogger(t *testing.T) {
	h := testutil.SetupTestDB(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	app := New(database.NewRepository(h), WithLogger(logger))

	if _, err := app.TodoService.CreateTodo(context.Background(), todoservice.CreateTodoRequest{Title: "logged"}); err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte("todo created")) {
		t.Errorf("Expected service to log through the injected logger, got %q", buf.String())
	}
}

func TestWithClock(t *testing.T) {
	h := testutil.SetupTestDB(t)

	frozen := time.Date(2040, time.January, 1, 0, 0, 0, 0, time.UTC)
	app := New(database.NewRepository(h), WithClock(func() time.Time { return frozen }))

	// A due date in 2035 lies in the past for the frozen clock
	due := time.Date(2035, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := app.TodoService.CreateTodo(context.Background(), todoservice.CreateTodoRequest{Title: "late", DueDate: &due})
	if err != todoservice.ErrDueDateInPast {
		t.Errorf("Expected ErrDueDateInPast, got %v", err)
	}
}

func TestWithClock_ReachesRepository(t *testing.T) {
	h := testutil.SetupTestDB(t)

	frozen := time.Date(2040, time.January, 1, 9, 30, 0, 0, time.UTC)
	app := New(database.NewRepository(h), WithClock(func() time.Time { return frozen }))

	todo, err := app.TodoService.CreateTodo(context.Background(), todoservice.CreateTodoRequest{Title: "no due date"})
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}
	if todo.DueDate == nil || !todo.DueDate.Equal(frozen) {
		t.Errorf("Expected default due date %v, got %v", frozen, todo.DueDate)
	}
}
