package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/app"
	clipkg "github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance
// This injects the app into the command context so commands use the test database
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin replaced by input
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()
	cmd.SetIn(strings.NewReader(input))
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	// nil args would make cobra fall back to os.Args, which holds the test flags
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	ctxWithApp := clipkg.WithApp(ctx, testApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	// styled text can split a word into per-rune escape sequences
	return ansi.Strip(output), executeErr
}

// ExitCode returns the exit code a command error maps to, 0 for nil
func ExitCode(err error) int {
	if err == nil {
		return clipkg.ExitSuccess
	}
	var exitErr *clipkg.CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return clipkg.ExitError
}
