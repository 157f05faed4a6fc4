package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/logging"
)

type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	handle    *database.Handle
	logCloser io.Closer
}

// WithApp stores a ready-made App in ctx; commands run against it instead of
// opening the configured database. Used by tests.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// FromCommand returns the CLI for a running command: the App injected with
// WithApp if present, otherwise a fresh CLI on the configured database.
// The --db flag, when set, overrides the configured path.
func FromCommand(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		styles.Init(config.DefaultColorScheme())
		return &CLI{App: a, Config: config.Default()}, nil
	}

	dbPath, _ := cmd.Flags().GetString("db")
	return NewCLI(ctx, dbPath)
}

// NewCLI loads config, starts logging, connects to the database and ensures
// the schema exists. dbPath overrides the configured database path if non-empty.
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// Logging is best effort; a read-only home should not block the CLI
	logCloser, err := logging.Init(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		slog.Warn("failed to initialize log file", "path", cfg.Log.File, "error", err)
	}

	styles.Init(cfg.ColorScheme)

	h, err := database.Connect(ctx, cfg.Database.Path)
	if err != nil {
		closeLog(logCloser)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := h.EnsureSchema(ctx); err != nil {
		if closeErr := h.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		closeLog(logCloser)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(database.NewRepository(h), app.WithLogger(logging.Logger))

	return &CLI{
		App:       application,
		Config:    cfg,
		handle:    h,
		logCloser: logCloser,
	}, nil
}

// DatabasePath returns the database file in use, or "" for an injected App
func (c *CLI) DatabasePath() string {
	if c.handle == nil {
		return ""
	}
	return c.handle.Path()
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var err error
	if c.handle != nil {
		err = c.handle.Close()
	}
	closeLog(c.logCloser)
	return err
}

func closeLog(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
