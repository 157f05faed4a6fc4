package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/database"
)

// initResult is what init reports in every output mode
type initResult struct {
	Database      string `json:"database"`
	Config        string `json:"config,omitempty"`
	ConfigWritten bool   `json:"config_written"`
}

// GetID lets quiet mode print just the database path
func (r initResult) GetID() string {
	return r.Database
}

func (r initResult) String() string {
	msg := fmt.Sprintf("✓ Database ready at %s", r.Database)
	switch {
	case r.ConfigWritten:
		msg += fmt.Sprintf("\n✓ Config written to %s", r.Config)
	case r.Config != "":
		msg += fmt.Sprintf("\n• Config already exists at %s", r.Config)
	}
	return msg
}

// InitCmd returns the init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the database and its schema",
		Long: `Open (creating if needed) the todo database and make sure the todos table exists. Safe to run repeatedly.

With --write-config, also save a default config file pointing at this database, unless one already exists.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("write-config", false, "Save a default config file if none exists")
	addOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	// Opening the CLI connects and ensures the schema
	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	result := initResult{Database: cliInstance.DatabasePath()}
	if result.Database == "" {
		result.Database = database.MemoryPath
	}

	writeConfig, _ := cmd.Flags().GetBool("write-config")
	if writeConfig {
		path, written, err := config.WriteDefault(cliInstance.DatabasePath())
		if err != nil {
			return formatter.FailWith(cli.ExitError, "CONFIG_ERROR",
				fmt.Sprintf("failed to write config: %v", err), "", err)
		}
		result.Config = path
		result.ConfigWritten = written
	}

	return formatter.Success(result)
}
