package cli

import (
	"testing"

	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*database.Handle, *app.App) {
	t.Helper()
	h := testutil.SetupTestDB(t)
	return h, app.New(database.NewRepository(h))
}

// CreateTestTodo wraps testutil.CreateTestTodo for CLI tests
func CreateTestTodo(t *testing.T, h *database.Handle, title string) *models.Todo {
	t.Helper()
	return testutil.CreateTestTodo(t, h, title)
}
