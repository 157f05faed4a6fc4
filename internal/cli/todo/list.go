package todo

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List todos",
		Long:    "List todos in storage order. Overdue open todos are highlighted.",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}

	cmd.Flags().Bool("done", false, "Only completed todos")
	cmd.Flags().Bool("pending", false, "Only open todos")
	cmd.MarkFlagsMutuallyExclusive("done", "pending")

	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	onlyDone, _ := cmd.Flags().GetBool("done")
	onlyPending, _ := cmd.Flags().GetBool("pending")

	formatter := formatterFor(cmd)

	filter := todoservice.ListFilter{Status: todoservice.StatusAll}
	switch {
	case onlyDone:
		filter.Status = todoservice.StatusDone
	case onlyPending:
		filter.Status = todoservice.StatusOpen
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todos, err := cliInstance.App.TodoService.ListTodos(ctx, filter)
	if err != nil {
		return formatter.Fail(err)
	}

	now := time.Now()

	if formatter.Quiet {
		for _, t := range todos {
			fmt.Println(t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(toJSONList(todos, now))
	}

	if len(todos) == 0 {
		fmt.Println("No todos")
		return nil
	}

	for _, t := range todos {
		fmt.Println(styles.RenderTodoLine(t, now))
	}
	return nil
}
