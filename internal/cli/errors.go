package cli

import (
	"errors"
	"log"

	"github.com/thenoetrevino/todos/internal/database"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// Classify maps an error onto an exit code and a machine-readable error code
func Classify(err error) (exitCode int, code string) {
	var decodeErr *database.DecodeError

	switch {
	case errors.Is(err, todoservice.ErrTodoNotFound), errors.Is(err, database.ErrNotFound):
		return ExitNotFound, "TODO_NOT_FOUND"
	case errors.Is(err, todoservice.ErrInvalidTodoID), errors.Is(err, database.ErrInvalidID):
		return ExitUsage, "INVALID_TODO_ID"
	case errors.Is(err, todoservice.ErrEmptyTitle),
		errors.Is(err, todoservice.ErrTitleTooLong),
		errors.Is(err, todoservice.ErrDueDateInPast),
		errors.Is(err, todoservice.ErrTimeWithoutDate):
		return ExitValidation, "VALIDATION_ERROR"
	case errors.As(err, &decodeErr):
		return ExitDataErr, "DECODE_ERROR"
	case database.IsStorageError(err):
		return ExitError, "STORAGE_ERROR"
	default:
		return ExitError, "ERROR"
	}
}

// Fail prints err through the formatter and returns the matching CommandError
func (f *OutputFormatter) Fail(err error) error {
	exitCode, code := Classify(err)
	f.report(code, err.Error(), suggestionFor(exitCode))
	return &CommandError{Code: exitCode, Err: err}
}

// FailWith prints a custom message with the given exit code
func (f *OutputFormatter) FailWith(exitCode int, code, message, suggestion string, err error) error {
	f.report(code, message, suggestion)
	return &CommandError{Code: exitCode, Err: err}
}

func (f *OutputFormatter) report(code, message, suggestion string) {
	if fmtErr := f.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
}

func suggestionFor(exitCode int) string {
	switch exitCode {
	case ExitNotFound:
		return "Use 'todos list' to see existing todos"
	case ExitUsage:
		return "Todo IDs are positive integers, e.g. 'todos show 3'"
	case ExitDataErr:
		return "The database contains a row this version cannot read"
	default:
		return ""
	}
}
