package todo

import (
	"errors"
	"strings"
	"time"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/todos/internal/models"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

const (
	formDateLayout = time.DateOnly
	formTimeLayout = "15:04"
)

// FormValues holds what the interactive add/edit form edits in place
type FormValues struct {
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD, empty for none
	DueTime     string // HH:MM, empty for end of day
	Confirm     bool
}

// formValuesFrom prefills the form with an existing todo, due date shown in loc
func formValuesFrom(todo *models.Todo, loc *time.Location) FormValues {
	v := FormValues{
		Title:       todo.Title,
		Description: todo.DescriptionOrEmpty(),
		Confirm:     true,
	}
	if todo.DueDate != nil {
		local := todo.DueDate.In(loc)
		v.DueDate = local.Format(formDateLayout)
		v.DueTime = local.Format(formTimeLayout)
	}
	return v
}

// Due parses the date and time fields
func (v FormValues) Due(loc *time.Location) (*time.Time, error) {
	return todoservice.ParseDueDate(strings.TrimSpace(v.DueDate), strings.TrimSpace(v.DueTime), loc)
}

// CreateRequest converts submitted values into a create request
func (v FormValues) CreateRequest(loc *time.Location) (todoservice.CreateTodoRequest, error) {
	due, err := v.Due(loc)
	if err != nil {
		return todoservice.CreateTodoRequest{}, err
	}
	return todoservice.CreateTodoRequest{
		Title:       v.Title,
		Description: v.Description,
		DueDate:     due,
	}, nil
}

// UpdateRequest converts submitted values into an update of todo id.
// Fields equal to before are left out so an unchanged past due date is not revalidated.
func (v FormValues) UpdateRequest(id string, before FormValues, loc *time.Location) (todoservice.UpdateTodoRequest, error) {
	req := todoservice.UpdateTodoRequest{ID: id}
	if v.Title != before.Title {
		req.Title = &v.Title
	}
	if v.Description != before.Description {
		req.Description = &v.Description
	}
	if v.DueDate != before.DueDate || v.DueTime != before.DueTime {
		due, err := v.Due(loc)
		if err != nil {
			return req, err
		}
		req.DueDate = due
	}
	return req, nil
}

func validateFormDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(formDateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateFormTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(formTimeLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use HH:MM (24h)")
	}
	return nil
}

// NewTodoForm creates a huh form for adding/editing a todo.
// The form uses pointers to update values in place.
func NewTodoForm(values *FormValues, submitTitle string) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter todo title...").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return todoservice.ErrEmptyTitle
				}
				return nil
			}).
			Value(&values.Title),
	)

	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Optional, markdown is rendered by 'todos show'").
			CharLimit(5000).
			Lines(5).
			Value(&values.Description),
	)

	fields = append(fields,
		huh.NewInput().
			Key("due_date").
			Title("Due date").
			Placeholder("YYYY-MM-DD").
			Validate(validateFormDate).
			Value(&values.DueDate),
		huh.NewInput().
			Key("due_time").
			Title("Due time").
			Placeholder("HH:MM").
			Validate(validateFormTime).
			Value(&values.DueTime),
	)

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title(submitTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&values.Confirm),
	)

	return huh.NewForm(huh.NewGroup(fields...))
}

// runForm runs the form and reports whether the user submitted it
func runForm(values *FormValues, submitTitle string) (bool, error) {
	if err := NewTodoForm(values, submitTitle).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return values.Confirm, nil
}
