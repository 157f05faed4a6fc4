package todo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// Commands returns every todo subcommand, ready to be attached to the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		InitCmd(),
		AddCmd(),
		ListCmd(),
		ShowCmd(),
		EditCmd(),
		DoneCmd(),
		UndoneCmd(),
		DeleteCmd(),
	}
}

// addOutputFlags registers the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return cli.NewFormatter(jsonOutput, quietMode)
}

func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	cliInstance, err := cli.FromCommand(cmd)
	if err != nil {
		return nil, formatter.FailWith(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "", err)
	}
	return cliInstance, nil
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// readDescription returns the flag value, or all of stdin when the value is "-"
func readDescription(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// parseDue turns --due-date and --due-time into a due date in local time
func parseDue(formatter *cli.OutputFormatter, date, clock string) (*time.Time, error) {
	due, err := todoservice.ParseDueDate(date, clock, time.Local)
	if err != nil {
		if errors.Is(err, todoservice.ErrTimeWithoutDate) {
			return nil, formatter.Fail(err)
		}
		return nil, formatter.FailWith(cli.ExitValidation, "INVALID_DUE_DATE",
			fmt.Sprintf("invalid due date: %v", err),
			"Use --due-date YYYY-MM-DD and --due-time HH:MM", err)
	}
	return due, nil
}
