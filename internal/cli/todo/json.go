package todo

import (
	"time"

	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
)

// todoJSON is the machine-readable shape of a todo
type todoJSON struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Completed   bool    `json:"completed"`
	Overdue     bool    `json:"overdue"`
}

// GetID lets quiet mode print just the id
func (t todoJSON) GetID() string {
	return t.ID
}

func toJSON(todo *models.Todo, now time.Time) todoJSON {
	out := todoJSON{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		Overdue:     todo.IsOverdue(now),
	}
	if todo.DueDate != nil {
		due := database.FormatDueDate(*todo.DueDate)
		out.DueDate = &due
	}
	return out
}

func toJSONList(todos []*models.Todo, now time.Time) []todoJSON {
	out := make([]todoJSON, 0, len(todos))
	for _, t := range todos {
		out = append(out, toJSON(t, now))
	}
	return out
}
