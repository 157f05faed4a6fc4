package models

import "time"

// Todo is a single to-do item as stored in the todos table
type Todo struct {
	ID          string
	Title       string
	Description *string    // nil when the column is NULL
	DueDate     *time.Time // nil only for rows written without a due date by other tools
	Completed   bool
}

// NewTodo carries the fields of a todo that does not have an ID yet
type NewTodo struct {
	Title       string
	Description *string
	DueDate     *time.Time // nil means "now" at insert time
	Completed   bool
}

// DescriptionOrEmpty returns the description, or "" when it is NULL
func (t *Todo) DescriptionOrEmpty() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// IsOverdue reports whether an open todo is past its due date
func (t *Todo) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}
