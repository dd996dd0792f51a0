package cli

import (
	"fmt"
	"io"

	"evoqa/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) != 1 {
			fmt.Fprintln(stderr, "Usage: evoqa validate <candidate_file>")
			return ExitUsage
		}

		if _, err := config.Load(args[0]); err != nil {
			fmt.Fprintf(stderr, "Invalid candidate: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Candidate %s is valid\n", args[0])
		return ExitOK
	}
}
