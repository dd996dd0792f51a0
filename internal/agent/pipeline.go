package agent

import (
	"context"

	"evoqa/internal/spec"
)

// questionPrefix introduces the raw question in both stage inputs.
const questionPrefix = "Question: "

// planPrefix joins the planner output onto the solver input.
const planPrefix = "\nPlan: "

// Pipeline sequences the optional planner stage and the mandatory
// solver stage for one question at a time. It holds no state beyond the
// provider handle; every Run is independent.
type Pipeline struct {
	Provider Provider
}

// Run answers a single question under cfg. When cfg.UsePlanner is set
// the planner stage runs first, strictly before the solver, and a
// non-empty plan is appended to the solver input. When it is unset the
// provider is invoked exactly once.
func (p Pipeline) Run(ctx context.Context, q string, cfg spec.Config) (string, error) {
	plan := ""
	if cfg.UsePlanner {
		var err error
		plan, err = p.Provider.Complete(ctx, cfg.Planner.SystemPrompt, questionPrefix+q, cfg.Planner.MaxTokens)
		if err != nil {
			return "", err
		}
	}

	input := questionPrefix + q
	if plan != "" {
		input += planPrefix + plan
	}
	return p.Provider.Complete(ctx, cfg.Solver.SystemPrompt, input, cfg.Solver.MaxTokens)
}
