package todo

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a todo",
		Long: `Change the title, description or due date of a todo.
Only the flags you pass are changed.

Examples:
  todos edit 3 --title="Buy oat milk"
  todos edit 3 --due-date=2030-05-02 --due-time=09:00

  # Move only the time, keeping the current day
  todos edit 3 --due-time=18:00

  todos edit 3 --interactive
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin, empty to clear)")
	cmd.Flags().String("due-date", "", "New due date YYYY-MM-DD")
	cmd.Flags().String("due-time", "", "New due time HH:MM")
	cmd.Flags().BoolP("interactive", "i", false, "Edit the todo with a form")

	addOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	interactive, _ := cmd.Flags().GetBool("interactive")

	formatter := formatterFor(cmd)

	changed := cmd.Flags().Changed("title") || cmd.Flags().Changed("description") ||
		cmd.Flags().Changed("due-date") || cmd.Flags().Changed("due-time")
	if !changed && !interactive {
		return formatter.FailWith(cli.ExitUsage, "NO_CHANGES", "nothing to update",
			"Pass --title, --description, --due-date, --due-time or --interactive",
			errors.New("nothing to update"))
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	current, err := cliInstance.App.TodoService.GetTodo(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	var req todoservice.UpdateTodoRequest
	if interactive {
		before := formValuesFrom(current, time.Local)
		values := before
		submitted, err := runForm(&values, "Save changes?")
		if err != nil {
			return formatter.FailWith(cli.ExitError, "FORM_ERROR", err.Error(), "", err)
		}
		if !submitted {
			fmt.Println("Cancelled")
			return nil
		}
		req, err = values.UpdateRequest(current.ID, before, time.Local)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "INVALID_DUE_DATE", err.Error(), "", err)
		}
	} else {
		req, err = updateRequestFromFlags(cmd, formatter, current.ID, current.DueDate)
		if err != nil {
			return err
		}
	}

	todo, err := cliInstance.App.TodoService.UpdateTodo(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	now := time.Now()
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(toJSON(todo, now))
	}

	fmt.Printf("✓ Todo %s updated\n", todo.ID)
	fmt.Println(styles.RenderTodoLine(todo, now))
	return nil
}

// updateRequestFromFlags builds an update from the flags that were set.
// A lone --due-time keeps the day of the current due date.
func updateRequestFromFlags(cmd *cobra.Command, formatter *cli.OutputFormatter, id string, currentDue *time.Time) (todoservice.UpdateTodoRequest, error) {
	req := todoservice.UpdateTodoRequest{ID: id}

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}

	if cmd.Flags().Changed("description") {
		value, _ := cmd.Flags().GetString("description")
		description, err := readDescription(cmd, value)
		if err != nil {
			return req, formatter.FailWith(cli.ExitError, "STDIN_READ_ERROR", err.Error(), "", err)
		}
		req.Description = &description
	}

	if cmd.Flags().Changed("due-date") || cmd.Flags().Changed("due-time") {
		dueDate, _ := cmd.Flags().GetString("due-date")
		dueTime, _ := cmd.Flags().GetString("due-time")
		if dueDate == "" && currentDue != nil {
			dueDate = currentDue.In(time.Local).Format(formDateLayout)
		}
		due, err := parseDue(formatter, dueDate, dueTime)
		if err != nil {
			return req, err
		}
		req.DueDate = due
	}

	return req, nil
}
