package todo

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new todo",
		Long: `Add a new todo.

Examples:
  # Due tonight at 23:59
  todos add --title="Buy milk" --due-date=2030-05-01

  # Due at a specific time, description from stdin
  echo "- 2%\n- oat" | todos add --title="Buy milk" --due-date=2030-05-01 --due-time=18:30 --description=-

  # Quiet mode for bash capture
  TODO_ID=$(todos add --title="Buy milk" --quiet)

  # Fill in a form instead of flags
  todos add --interactive
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Todo title (required unless --interactive)")
	cmd.Flags().String("description", "", "Todo description, markdown allowed (use - for stdin)")
	cmd.Flags().String("due-date", "", "Due date YYYY-MM-DD (defaults to now)")
	cmd.Flags().String("due-time", "", "Due time HH:MM, needs --due-date (defaults to 23:59)")
	cmd.Flags().BoolP("interactive", "i", false, "Fill in the todo with a form")

	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	descriptionFlag, _ := cmd.Flags().GetString("description")
	dueDate, _ := cmd.Flags().GetString("due-date")
	dueTime, _ := cmd.Flags().GetString("due-time")
	interactive, _ := cmd.Flags().GetBool("interactive")

	formatter := formatterFor(cmd)

	description, err := readDescription(cmd, descriptionFlag)
	if err != nil {
		return formatter.FailWith(cli.ExitError, "STDIN_READ_ERROR", err.Error(), "", err)
	}

	var req todoservice.CreateTodoRequest
	if interactive {
		values := FormValues{Title: title, Description: description, DueDate: dueDate, DueTime: dueTime, Confirm: true}
		submitted, err := runForm(&values, "Add this todo?")
		if err != nil {
			return formatter.FailWith(cli.ExitError, "FORM_ERROR", err.Error(), "", err)
		}
		if !submitted {
			fmt.Println("Cancelled")
			return nil
		}
		req, err = values.CreateRequest(time.Local)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "INVALID_DUE_DATE", err.Error(), "", err)
		}
	} else {
		due, err := parseDue(formatter, dueDate, dueTime)
		if err != nil {
			return err
		}
		req = todoservice.CreateTodoRequest{Title: title, Description: description, DueDate: due}
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todo, err := cliInstance.App.TodoService.CreateTodo(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	now := time.Now()
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(toJSON(todo, now))
	}

	fmt.Printf("✓ Todo %s created\n", todo.ID)
	fmt.Println(styles.RenderTodoLine(todo, now))
	return nil
}
