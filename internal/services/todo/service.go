package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
)

const maxTitleLength = 255

// Service defines all todo-related business operations
type Service interface {
	// Read operations
	ListTodos(ctx context.Context, filter ListFilter) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id string) (*models.Todo, error)

	// Write operations
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}

// Status selects todos by completion state
type Status int

const (
	StatusAll Status = iota
	StatusOpen
	StatusDone
)

// ListFilter narrows ListTodos results; the zero value returns everything
type ListFilter struct {
	Status Status
}

// CreateTodoRequest encapsulates all data needed to create a todo
type CreateTodoRequest struct {
	Title       string
	Description string     // empty is stored as NULL
	DueDate     *time.Time // nil defaults to the time of insertion
}

// UpdateTodoRequest encapsulates all data needed to update a todo
// Fields with pointers are optional - nil means don't update
type UpdateTodoRequest struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new todo service. A nil logger uses slog.Default and a nil
// clock uses time.Now.
func NewService(repo database.DataStore, logger *slog.Logger, now func() time.Time) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:   repo,
		logger: logger,
		now:    now,
	}
}

// ListTodos returns todos in storage order, optionally filtered by status
func (s *service) ListTodos(ctx context.Context, filter ListFilter) ([]*models.Todo, error) {
	todos, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	if filter.Status == StatusAll {
		return todos, nil
	}

	filtered := make([]*models.Todo, 0, len(todos))
	for _, t := range todos {
		if t.Completed == (filter.Status == StatusDone) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// GetTodo returns a single todo
func (s *service) GetTodo(ctx context.Context, id string) (*models.Todo, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateErr("failed to get todo", err)
	}
	return todo, nil
}

// CreateTodo handles todo creation with validation
func (s *service) CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error) {
	title, err := s.validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if err := s.validateDueDate(req.DueDate); err != nil {
		return nil, err
	}

	todo, err := s.repo.Create(ctx, models.NewTodo{
		Title:       title,
		Description: optionalString(req.Description),
		DueDate:     req.DueDate,
		Completed:   false,
	})
	if err != nil {
		s.logger.Error("failed to create todo", "title", title, "error", err)
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Debug("todo created", "todo_id", todo.ID)
	return todo, nil
}

// UpdateTodo applies the provided fields on top of the stored todo and
// overwrites the row. Unlike the repository, a missing id is reported.
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error) {
	if err := validateID(req.ID); err != nil {
		return nil, err
	}
	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, translateErr("failed to get todo", err)
	}

	updated := *current
	if req.Title != nil {
		title, err := s.validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		updated.Title = title
	}
	if req.Description != nil {
		updated.Description = optionalString(*req.Description)
	}
	if req.DueDate != nil {
		if err := s.validateDueDate(req.DueDate); err != nil {
			return nil, err
		}
		updated.DueDate = req.DueDate
	}
	if req.Completed != nil {
		updated.Completed = *req.Completed
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		s.logger.Error("failed to update todo", "todo_id", req.ID, "error", err)
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	s.logger.Debug("todo updated", "todo_id", req.ID)
	return s.GetTodo(ctx, req.ID)
}

// SetCompleted marks a todo done or open again
func (s *service) SetCompleted(ctx context.Context, id string, completed bool) (*models.Todo, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, translateErr("failed to get todo", err)
	}

	if err := s.repo.SetCompleted(ctx, id, completed); err != nil {
		s.logger.Error("failed to set completion", "todo_id", id, "error", err)
		return nil, fmt.Errorf("failed to set completion: %w", err)
	}

	s.logger.Debug("todo completion changed", "todo_id", id, "completed", completed)
	return s.GetTodo(ctx, id)
}

// DeleteTodo removes a todo. Deleting an id that does not exist succeeds.
func (s *service) DeleteTodo(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete todo", "todo_id", id, "error", err)
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.logger.Debug("todo deleted", "todo_id", id)
	return nil
}

func (s *service) validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func (s *service) validateDueDate(due *time.Time) error {
	if due != nil && due.Before(s.now()) {
		return ErrDueDateInPast
	}
	return nil
}

// validateID rejects ids the store could never have issued. The repository
// itself treats them as matching no row.
func validateID(id string) error {
	if _, err := database.ParseID(id); err != nil {
		return ErrInvalidTodoID
	}
	return nil
}

// translateErr maps repository sentinels onto service errors
func translateErr(msg string, err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return ErrTodoNotFound
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

// optionalString maps "" to nil so blank descriptions are stored as NULL
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
