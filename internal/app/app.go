package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/todos/internal/database"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	logger *slog.Logger

	// Service layer (business logic)
	TodoService todoservice.Service
}

// clockSetter is implemented by stores that stamp default due dates
type clockSetter interface {
	SetClock(now func() time.Time)
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cs, ok := repo.(clockSetter); ok {
		cs.SetClock(cfg.clock)
	}

	return &App{
		repo:        repo,
		logger:      cfg.logger,
		TodoService: todoservice.NewService(repo, cfg.logger, cfg.clock),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the logger shared by the services
func (a *App) Logger() *slog.Logger {
	return a.logger
}
