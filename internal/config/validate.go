package config

import (
	"fmt"
	"strings"

	"evoqa/internal/spec"
)

// Issue captures a validation problem in a candidate config.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more candidate config issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

// Validate checks a normalized candidate config against the schema
// contract: positive token budgets, a solver prompt, and a planner
// prompt whenever the planner stage is enabled.
func Validate(cfg *spec.Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if strings.TrimSpace(cfg.Solver.SystemPrompt) == "" {
		add("solver.system_prompt", "is required")
	}
	if cfg.Solver.MaxTokens <= 0 {
		add("solver.max_tokens", "must be positive")
	}
	if cfg.UsePlanner {
		if strings.TrimSpace(cfg.Planner.SystemPrompt) == "" {
			add("planner.system_prompt", "is required when use_planner is set")
		}
	}
	if cfg.Planner.MaxTokens <= 0 {
		add("planner.max_tokens", "must be positive")
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
