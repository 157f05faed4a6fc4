package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/thenoetrevino/todos/internal/models"
)

const selectTodoColumns = `SELECT id, title, description, dueDate, completed FROM todos`

// TodoRepo executes todo statements against a Handle
type TodoRepo struct {
	h   *Handle
	now func() time.Time
}

// NewTodoRepo creates a TodoRepo on an open handle
func NewTodoRepo(h *Handle) *TodoRepo {
	return &TodoRepo{h: h, now: time.Now}
}

// SetClock replaces time.Now as the source of the default due date
func (r *TodoRepo) SetClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Insert writes a new todo. The assigned id is not returned; use Create for that.
// A nil due date is stored as the current time.
func (r *TodoRepo) Insert(ctx context.Context, todo models.NewTodo) error {
	_, err := r.insert(ctx, todo)
	return err
}

// Create inserts a todo and reads the stored row back
func (r *TodoRepo) Create(ctx context.Context, todo models.NewTodo) (*models.Todo, error) {
	id, err := r.insert(ctx, todo)
	if err != nil {
		return nil, err
	}

	row := r.h.db.QueryRowContext(ctx, selectTodoColumns+` WHERE id = ?`, id)
	created, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &StorageError{Op: "create", Err: err}
		}
		return nil, wrapScanErr("create", err)
	}
	return created, nil
}

func (r *TodoRepo) insert(ctx context.Context, todo models.NewTodo) (int64, error) {
	due := r.now()
	if todo.DueDate != nil {
		due = *todo.DueDate
	}

	result, err := r.h.db.ExecContext(ctx,
		`INSERT INTO todos (title, description, dueDate, completed)
		 VALUES (?, ?, ?, ?)`,
		todo.Title, stringPtrToNull(todo.Description), FormatDueDate(due), boolToInt(todo.Completed),
	)
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}
	return id, nil
}

// FetchAll returns every todo in the order the engine yields them (no ORDER BY)
func (r *TodoRepo) FetchAll(ctx context.Context) ([]*models.Todo, error) {
	rows, err := r.h.db.QueryContext(ctx, selectTodoColumns)
	if err != nil {
		return nil, &StorageError{Op: "fetch all", Err: err}
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, wrapScanErr("fetch all", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "fetch all", Err: err}
	}

	return todos, nil
}

// GetByID returns a single todo or ErrNotFound. An id that is not a row id matches nothing.
func (r *TodoRepo) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	rowID, ok := lookupID(id)
	if !ok {
		return nil, ErrNotFound
	}

	row := r.h.db.QueryRowContext(ctx, selectTodoColumns+` WHERE id = ?`, rowID)
	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapScanErr("get", err)
	}
	return todo, nil
}

// Update overwrites title, description, dueDate and completed of the row with todo.ID.
// A missing or malformed id touches zero rows and is not an error.
func (r *TodoRepo) Update(ctx context.Context, todo *models.Todo) error {
	rowID, ok := lookupID(todo.ID)
	if !ok {
		return nil
	}

	due := r.now()
	if todo.DueDate != nil {
		due = *todo.DueDate
	}

	_, err := r.h.db.ExecContext(ctx,
		`UPDATE todos
		 SET title = ?, description = ?, dueDate = ?, completed = ?
		 WHERE id = ?`,
		todo.Title, stringPtrToNull(todo.Description), FormatDueDate(due), boolToInt(todo.Completed), rowID,
	)
	if err != nil {
		return &StorageError{Op: "update", Err: err}
	}
	return nil
}

// SetCompleted changes only the completion flag. A missing or malformed id is not an error.
func (r *TodoRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	rowID, ok := lookupID(id)
	if !ok {
		return nil
	}

	_, err := r.h.db.ExecContext(ctx,
		`UPDATE todos SET completed = ? WHERE id = ?`,
		boolToInt(completed), rowID,
	)
	if err != nil {
		return &StorageError{Op: "set completed", Err: err}
	}
	return nil
}

// Delete removes the todo with the given id. A missing or malformed id is not an error.
func (r *TodoRepo) Delete(ctx context.Context, id string) error {
	rowID, ok := lookupID(id)
	if !ok {
		return nil
	}

	if _, err := r.h.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", rowID); err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

// lookupID reports the row id for id, or false when no row can carry it
func lookupID(id string) (int64, bool) {
	rowID, err := ParseID(id)
	return rowID, err == nil
}

// wrapScanErr leaves decode errors alone and classifies everything else as a storage failure
func wrapScanErr(op string, err error) error {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
