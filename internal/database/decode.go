package database

import (
	"errors"

	"github.com/thenoetrevino/todos/internal/models"
)

var errUnexpectedType = errors.New("unexpected column type")

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo reads the raw column values of one row and decodes them into a Todo.
// Columns are scanned untyped so a malformed value yields a DecodeError naming the
// column instead of a driver conversion message.
func scanTodo(s rowScanner) (*models.Todo, error) {
	var id, title, description, dueDate, completed any
	if err := s.Scan(&id, &title, &description, &dueDate, &completed); err != nil {
		return nil, err
	}

	rowID, ok := id.(int64)
	if !ok || rowID <= 0 {
		return nil, &DecodeError{Column: "id", Value: id, Err: errUnexpectedType}
	}

	todo := &models.Todo{ID: FormatID(rowID)}

	titleStr, err := decodeText("title", title)
	if err != nil {
		return nil, err
	}
	if titleStr == nil {
		return nil, &DecodeError{Column: "title", Value: nil, Err: errors.New("title is NULL")}
	}
	todo.Title = *titleStr

	todo.Description, err = decodeText("description", description)
	if err != nil {
		return nil, err
	}

	dueStr, err := decodeText("dueDate", dueDate)
	if err != nil {
		return nil, err
	}
	if dueStr != nil {
		due, err := ParseDueDate(*dueStr)
		if err != nil {
			return nil, &DecodeError{Column: "dueDate", Value: *dueStr, Err: err}
		}
		todo.DueDate = &due
	}

	switch completed {
	case int64(0):
		todo.Completed = false
	case int64(1):
		todo.Completed = true
	default:
		return nil, &DecodeError{Column: "completed", Value: completed}
	}

	return todo, nil
}

// decodeText accepts TEXT (string or []byte) and NULL, which decodes to nil
func decodeText(column string, v any) (*string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &val, nil
	case []byte:
		s := string(val)
		return &s, nil
	default:
		return nil, &DecodeError{Column: column, Value: v, Err: errUnexpectedType}
	}
}
