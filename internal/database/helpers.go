package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// dueDateLayout is ISO-8601 in UTC with millisecond precision, e.g. 2024-05-01T13:45:00.000Z
const dueDateLayout = "2006-01-02T15:04:05.000Z"

// FormatDueDate renders a due date the way it is stored in the dueDate column
func FormatDueDate(t time.Time) string {
	return t.UTC().Format(dueDateLayout)
}

// ParseDueDate parses a stored dueDate value. Any RFC 3339 timestamp is accepted so
// rows written by other tools still decode.
func ParseDueDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseID converts the string form of a todo ID back to its row id
func ParseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return n, nil
}

// FormatID converts a row id to the string form callers see
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// boolToInt maps the completion flag onto its 0/1 column value
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// stringPtrToNull converts *string to sql.NullString.
// nil becomes NULL.
func stringPtrToNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
