// Package runner executes the benchmark set against one candidate
// configuration and aggregates a success rate.
package runner

import (
	"context"
	"fmt"
	"io"

	"evoqa/internal/agent"
	"evoqa/internal/question"
	"evoqa/internal/spec"
)

// Options adjusts the observational side effects of a benchmark run.
// Options never change the returned Result.
type Options struct {
	Verbose  bool
	Writer   io.Writer
	NoColor  bool
	Observer Observer
}

// Runner runs the benchmark set through the two-stage pipeline. The
// provider handle is shared and read-only; everything else is created
// per run, so a Runner value may score many candidates in sequence.
type Runner struct {
	Provider agent.Provider
	Examples []question.Example
}

// RunBenchmark processes every example in order, grading each answer by
// normalized substring match. A provider failure aborts the run with no
// partial tally. Examples run strictly sequentially: within each one
// the planner call, if any, completes before the solver call starts.
func (r Runner) RunBenchmark(ctx context.Context, cfg spec.Config, opts Options) (Result, error) {
	writer := opts.Writer
	if writer == nil {
		writer = io.Discard
	}
	pal := paletteFor(writer, opts.NoColor)
	pipeline := agent.Pipeline{Provider: r.Provider}

	total := len(r.Examples)
	for i, example := range r.Examples {
		emit(opts.Observer, Event{Type: EventQueued, Index: i, Total: total, Question: example.Question})
	}

	correct := 0
	for i, example := range r.Examples {
		emit(opts.Observer, Event{Type: EventRunning, Index: i, Total: total, Question: example.Question})
		answer, err := pipeline.Run(ctx, example.Question, cfg)
		if err != nil {
			emit(opts.Observer, Event{Type: EventError, Index: i, Total: total, Question: example.Question, Err: err})
			return Result{}, fmt.Errorf("example %d of %d: %w", i+1, total, err)
		}

		result := ExampleResult{
			Index:    i,
			Question: example.Question,
			Answer:   answer,
			Correct:  question.Matches(answer, example.ExpectedSubstring),
		}
		eventType := EventIncorrect
		if result.Correct {
			correct++
			eventType = EventCorrect
		}
		emit(opts.Observer, Event{Type: eventType, Index: i, Total: total, Question: example.Question, Answer: answer, Correct: correct})
		if opts.Verbose {
			printExample(writer, pal, result)
		}
	}

	if opts.Verbose {
		printTally(writer, pal, correct, total)
	}
	emit(opts.Observer, Event{Type: EventFinished, Total: total, Correct: correct})

	rate := 0.0
	if total > 0 {
		rate = float64(correct) / float64(total)
	}
	return Result{SuccessRate: rate, NumExamples: total}, nil
}
