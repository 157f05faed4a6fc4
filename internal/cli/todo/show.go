package todo

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli/styles"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show todo details",
		Long:  "Display a todo with its status, due date and rendered description.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todo, err := cliInstance.App.TodoService.GetTodo(ctx, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	now := time.Now()
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(toJSON(todo, now))
	}

	fmt.Println(styles.RenderTodoCard(todo, now))
	return nil
}
