package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/todos/cmd"
	"github.com/thenoetrevino/todos/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cli.CommandError
		if errors.As(err, &exitErr) {
			// Already reported by the command's formatter
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitUsage)
	}
}
