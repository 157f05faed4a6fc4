package database

import (
	"context"

	"github.com/thenoetrevino/todos/internal/models"
)

// TodoReader defines read operations for todos.
type TodoReader interface {
	FetchAll(ctx context.Context) ([]*models.Todo, error)
	GetByID(ctx context.Context, id string) (*models.Todo, error)
}

// TodoWriter defines write operations for todos.
// Update, SetCompleted and Delete succeed without touching anything when the id does not exist.
type TodoWriter interface {
	Insert(ctx context.Context, todo models.NewTodo) error
	Create(ctx context.Context, todo models.NewTodo) (*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}

// TodoRepository combines all todo operations.
type TodoRepository interface {
	TodoReader
	TodoWriter
}

// Compile-time verification that *TodoRepo implements TodoRepository
var _ TodoRepository = (*TodoRepo)(nil)
