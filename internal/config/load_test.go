package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCandidate(t *testing.T, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write candidate: %v", err)
	}
	return path
}

// TestLoadAppliesDefaults verifies omitted budgets pick up stage
// defaults.
func TestLoadAppliesDefaults(t *testing.T) {
	path := writeCandidate(t, "candidate.yml", `use_planner: false
solver:
  system_prompt: "Answer the question directly."
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Planner.MaxTokens != 128 {
		t.Fatalf("expected planner default 128, got %d", cfg.Planner.MaxTokens)
	}
	if cfg.Solver.MaxTokens != 64 {
		t.Fatalf("expected solver default 64, got %d", cfg.Solver.MaxTokens)
	}
}

// TestLoadJSONCandidate verifies JSON candidates load by extension.
func TestLoadJSONCandidate(t *testing.T) {
	path := writeCandidate(t, "candidate.json", `{
  "use_planner": true,
  "planner": {"system_prompt": "Plan the answer.", "max_tokens": 128},
  "solver": {"system_prompt": "Answer.", "max_tokens": 32}
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.UsePlanner || cfg.Solver.MaxTokens != 32 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

// TestLoadMissingSolverPrompt verifies the solver prompt is mandatory.
func TestLoadMissingSolverPrompt(t *testing.T) {
	path := writeCandidate(t, "candidate.yml", `use_planner: false
solver:
  max_tokens: 64
`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "solver.system_prompt") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestLoadNegativeBudget verifies non-positive budgets are rejected.
func TestLoadNegativeBudget(t *testing.T) {
	path := writeCandidate(t, "candidate.yml", `use_planner: false
solver:
  system_prompt: "Answer."
  max_tokens: -5
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for negative max_tokens")
	}
}

// TestLoadPlannerPromptRequiredWhenEnabled verifies planner validation
// only applies when the stage is on.
func TestLoadPlannerPromptRequiredWhenEnabled(t *testing.T) {
	enabled := writeCandidate(t, "enabled.yml", `use_planner: true
solver:
  system_prompt: "Answer."
`)
	if _, err := Load(enabled); err == nil {
		t.Fatalf("expected error for enabled planner without prompt")
	}

	disabled := writeCandidate(t, "disabled.yml", `use_planner: false
solver:
  system_prompt: "Answer."
`)
	if _, err := Load(disabled); err != nil {
		t.Fatalf("expected disabled planner to validate, got %v", err)
	}
}

// TestScaffoldRoundTrips verifies the starter candidate loads cleanly.
func TestScaffoldRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidate.yml")
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffolded candidate: %v", err)
	}
	if !cfg.UsePlanner {
		t.Fatalf("expected scaffold to enable the planner")
	}
	if cfg.Solver.MaxTokens != 32 {
		t.Fatalf("expected solver budget 32, got %d", cfg.Solver.MaxTokens)
	}
	if err := Scaffold(path); err == nil {
		t.Fatalf("expected second scaffold to refuse overwrite")
	}
}
