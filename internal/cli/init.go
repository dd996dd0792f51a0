package cli

import (
	"fmt"
	"io"

	"evoqa/internal/config"
)

// defaultCandidatePath is where init writes the starter candidate.
const defaultCandidatePath = "candidate.yml"

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		path := defaultCandidatePath
		switch len(args) {
		case 0:
		case 1:
			path = args[0]
		default:
			fmt.Fprintln(stderr, "Usage: evoqa init [path]")
			return ExitUsage
		}

		if err := config.Scaffold(path); err != nil {
			fmt.Fprintf(stderr, "Failed to scaffold candidate: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote starter candidate to %s\n", path)
		return ExitOK
	}
}
