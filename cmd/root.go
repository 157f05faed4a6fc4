package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli/todo"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Todos - a local to-do list",
		Long: `Todos keeps a to-do list in a local SQLite database.

Every command accepts --json for machine-readable output and --quiet for
ID-only output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("db", "", "Database file (overrides config and TODOS_DB_PATH)")
	cmd.AddCommand(todo.Commands()...)

	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}
