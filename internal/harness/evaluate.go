package harness

import (
	"context"
	"fmt"
	"io"
	"math"

	"evoqa/internal/runner"

	"github.com/google/uuid"
)

// ScoreReport is the adapter output consumed by the optimizer. All
// three fields carry the same value today; the split leaves room for
// multi-objective scoring without changing the contract.
type ScoreReport struct {
	Score         float64 `json:"score"`
	CombinedScore float64 `json:"combined_score"`
	SuccessRate   float64 `json:"success_rate"`
}

// EvaluateOptions adjusts adapter diagnostics. The benchmark itself
// always runs non-verbose.
type EvaluateOptions struct {
	Verbose bool
	Writer  io.Writer
}

// Evaluate loads the candidate at location, runs one non-verbose
// benchmark pass, and reports the success rate as the fitness score.
// Load and contract failures are returned as errors, never mapped to a
// zero score. Evaluate is safe to call repeatedly for many locations:
// every call builds fresh state around the shared read-only provider.
func (l Loader) Evaluate(ctx context.Context, location string, opts EvaluateOptions) (ScoreReport, error) {
	roundID := uuid.NewString()
	logVerbose(opts, "round %s: loading candidate %s", roundID, location)

	candidate, err := l.Load(location)
	if err != nil {
		return ScoreReport{}, err
	}

	result, err := candidate.RunBenchmark(ctx, runner.Options{})
	if err != nil {
		return ScoreReport{}, fmt.Errorf("round %s: %w", roundID, err)
	}

	rate := result.SuccessRate
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		rate = 0.0
	}
	logVerbose(opts, "round %s: success_rate %.3f over %d examples", roundID, rate, result.NumExamples)
	return ScoreReport{Score: rate, CombinedScore: rate, SuccessRate: rate}, nil
}

func logVerbose(opts EvaluateOptions, format string, args ...any) {
	if !opts.Verbose || opts.Writer == nil {
		return
	}
	fmt.Fprintf(opts.Writer, format+"\n", args...)
}
