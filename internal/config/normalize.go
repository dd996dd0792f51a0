package config

import "evoqa/internal/spec"

const (
	// defaultPlannerMaxTokens bounds planner output when the payload
	// omits a budget.
	defaultPlannerMaxTokens = 128
	// defaultSolverMaxTokens bounds solver output when the payload
	// omits a budget.
	defaultSolverMaxTokens = 64
)

// Normalize fills omitted token budgets with stage defaults. Prompts
// are left untouched: their exact text is the payload the optimizer
// tunes.
func Normalize(cfg *spec.Config) {
	if cfg.Planner.MaxTokens == 0 {
		cfg.Planner.MaxTokens = defaultPlannerMaxTokens
	}
	if cfg.Solver.MaxTokens == 0 {
		cfg.Solver.MaxTokens = defaultSolverMaxTokens
	}
}
