package todo

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo",
		Long: `Delete a todo by ID (requires confirmation unless --force, --json or --quiet).
Deleting an ID that does not exist succeeds.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	force, _ := cmd.Flags().GetBool("force")

	formatter := formatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	// Ask for confirmation unless force or a machine-readable mode
	if !force && !formatter.Quiet && !formatter.JSON {
		todo, err := cliInstance.App.TodoService.GetTodo(ctx, id)
		if err != nil {
			return formatter.Fail(err)
		}

		fmt.Printf("Delete todo #%s: '%s'? (y/N): ", todo.ID, todo.Title)
		var response string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
			slog.Debug("Error reading user input", "error", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TodoService.DeleteTodo(ctx, id); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"todo_id": id,
		})
	}

	fmt.Printf("✓ Todo %s deleted\n", id)
	return nil
}
