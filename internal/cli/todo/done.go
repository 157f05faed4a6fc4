package todo

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetCompleted(cmd, args[0], true)
		},
	}

	addOutputFlags(cmd)

	return cmd
}

// UndoneCmd returns the undone subcommand
func UndoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undone <id>",
		Short: "Mark a todo as open again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetCompleted(cmd, args[0], false)
		},
	}

	addOutputFlags(cmd)

	return cmd
}

func runSetCompleted(cmd *cobra.Command, id string, completed bool) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todo, err := cliInstance.App.TodoService.SetCompleted(ctx, id, completed)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(toJSON(todo, time.Now()))
	}

	state := "open"
	if completed {
		state = "done"
	}
	fmt.Printf("✓ Todo %s marked %s\n", todo.ID, state)
	return nil
}
