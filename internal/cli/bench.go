package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"evoqa/internal/config"
	"evoqa/internal/question"
	"evoqa/internal/runner"
	"evoqa/internal/ui/live"
)

// runBench builds the handler for the bench command: one verbose
// diagnostic benchmark pass, outside the optimizer's scoring contract.
func runBench(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		questionsPath := fs.String("questions", "", "Benchmark set file (default: built-in set)")
		useUI := fs.Bool("ui", false, "Render a live progress UI")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		logPath := fs.String("log", "", "Mirror verbose output to a file")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		candidateArgs := fs.Args()
		if len(candidateArgs) != 1 {
			fmt.Fprintln(stderr, "Usage: evoqa bench <candidate_file>")
			return ExitUsage
		}

		cfg, err := config.Load(candidateArgs[0])
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load candidate: %v\n", err)
			return ExitError
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

		writer := stdout
		var logFile io.WriteCloser
		if strings.TrimSpace(*logPath) != "" {
			dir := filepath.Dir(*logPath)
			if dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					fmt.Fprintf(stderr, "Failed to create log directory: %v\n", err)
					return ExitError
				}
			}
			file, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
				return ExitError
			}
			logFile = file
			defer logFile.Close()
			writer = io.MultiWriter(stdout, logFile)
		}

		bench := runner.Runner{Provider: provider, Examples: examples}
		ctx := context.Background()

		var result runner.Result
		if *useUI {
			controller := live.Start(stdout, live.Options{NoColor: *noColor})
			controller.OnRunStart(uuid.NewString(), candidateArgs[0])
			result, err = bench.RunBenchmark(ctx, cfg, runner.Options{Observer: controller})
			controller.Close()
			controller.Wait()
		} else {
			result, err = bench.RunBenchmark(ctx, cfg, runner.Options{
				Verbose: true,
				Writer:  writer,
				NoColor: *noColor,
			})
		}
		if err != nil {
			fmt.Fprintf(stderr, "Benchmark failed: %v\n", err)
			return ExitError
		}

		payload, err := json.Marshal(result)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to encode result: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(writer, string(payload))
		return ExitOK
	}
}

// resolveExamples loads the benchmark set from path, or falls back to
// the built-in set when path is empty.
func resolveExamples(path string) ([]question.Example, error) {
	if strings.TrimSpace(path) == "" {
		return question.DefaultSet().Examples, nil
	}
	set, err := question.LoadSet(path)
	if err != nil {
		return nil, err
	}
	return set.Examples, nil
}
