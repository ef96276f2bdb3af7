// Package main is the entry point for the agentlint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/agentlint/agentlint/cmd/agentlint/commands"
	"github.com/agentlint/agentlint/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		os.Exit(errors.ExitSuccess)
	}

	// Validation failures already printed a report; just set the code.
	if errors.Is(err, errors.ErrValidationFailed) {
		os.Exit(errors.ExitUser)
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(errors.ExitUser)
}
