package spec

import (
	"strings"
	"testing"
)

// TestParseConfig verifies a full YAML payload parses into the schema.
func TestParseConfig(t *testing.T) {
	payload := `use_planner: true
planner:
  system_prompt: "You are a planning assistant."
  max_tokens: 128
solver:
  system_prompt: "Answer the question."
  max_tokens: 64
`
	cfg, err := ParseConfig([]byte(payload))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.UsePlanner {
		t.Fatalf("expected use_planner true")
	}
	if cfg.Planner.MaxTokens != 128 || cfg.Solver.MaxTokens != 64 {
		t.Fatalf("unexpected token budgets: %+v", cfg)
	}
	if cfg.Solver.SystemPrompt != "Answer the question." {
		t.Fatalf("unexpected solver prompt: %q", cfg.Solver.SystemPrompt)
	}
}

// TestParseConfigUnknownField verifies unknown keys are rejected.
func TestParseConfigUnknownField(t *testing.T) {
	payload := `use_planner: false
solver:
  system_prompt: "Answer."
  max_tokens: 64
temperature: 0.7
`
	if _, err := ParseConfig([]byte(payload)); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

// TestParseConfigMultipleDocuments verifies extra documents are rejected.
func TestParseConfigMultipleDocuments(t *testing.T) {
	payload := "use_planner: false\n---\nuse_planner: true\n"
	_, err := ParseConfig([]byte(payload))
	if err == nil {
		t.Fatalf("expected multiple document error")
	}
	if !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestParseConfigJSON verifies strict JSON parsing.
func TestParseConfigJSON(t *testing.T) {
	payload := `{
  "use_planner": false,
  "planner": {"system_prompt": "", "max_tokens": 128},
  "solver": {"system_prompt": "Answer only with the single word: Paris", "max_tokens": 32}
}`
	cfg, err := ParseConfigJSON([]byte(payload))
	if err != nil {
		t.Fatalf("parse config json: %v", err)
	}
	if cfg.UsePlanner {
		t.Fatalf("expected use_planner false")
	}
	if cfg.Solver.MaxTokens != 32 {
		t.Fatalf("unexpected solver max_tokens: %d", cfg.Solver.MaxTokens)
	}
}

// TestParseConfigJSONUnknownField verifies unknown JSON keys are rejected.
func TestParseConfigJSONUnknownField(t *testing.T) {
	payload := `{"use_planner": false, "model": "gpt-4o-mini"}`
	if _, err := ParseConfigJSON([]byte(payload)); err == nil {
		t.Fatalf("expected unknown field error")
	}
}
