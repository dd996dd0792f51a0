package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"evoqa/internal/harness"
)

// runScore builds the handler for the score command: the optimizer's
// scoring entry point. Load and contract failures exit non-zero with
// distinct messages; they are never reported as a zero score.
func runScore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		questionsPath := fs.String("questions", "", "Benchmark set file (default: built-in set)")
		verbose := fs.Bool("verbose", false, "Log round diagnostics to stderr")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		candidateArgs := fs.Args()
		if len(candidateArgs) != 1 {
			fmt.Fprintln(stderr, "Usage: evoqa score <candidate_file>")
			return ExitUsage
		}

		examples, err := resolveExamples(*questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load benchmark set: %v\n", err)
			return ExitError
		}

		provider, err := newProvider()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to initialize provider: %v\n", err)
			return ExitError
		}

		loader := harness.Loader{Provider: provider, Examples: examples}
		report, err := loader.Evaluate(context.Background(), candidateArgs[0], harness.EvaluateOptions{
			Verbose: *verbose,
			Writer:  stderr,
		})
		if err != nil {
			var loadErr *harness.LoadError
			var contractErr *harness.ContractError
			switch {
			case errors.As(err, &loadErr):
				fmt.Fprintf(stderr, "Load failure: %v\n", err)
			case errors.As(err, &contractErr):
				fmt.Fprintf(stderr, "Contract failure: %v\n", err)
			default:
				fmt.Fprintf(stderr, "Evaluation failed: %v\n", err)
			}
			return ExitError
		}

		payload, err := json.Marshal(report)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to encode report: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, string(payload))
		return ExitOK
	}
}
