package todo

import "errors"

// Todo-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("todo title cannot be empty")
	ErrTitleTooLong    = errors.New("todo title cannot exceed 255 characters")
	ErrInvalidTodoID   = errors.New("invalid todo ID")
	ErrDueDateInPast   = errors.New("due date and time cannot be in the past")
	ErrTimeWithoutDate = errors.New("a due time needs a due date")

	// Business logic errors
	ErrTodoNotFound = errors.New("todo not found")
)
