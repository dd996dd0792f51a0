package agent_test

import (
	"context"
	"errors"
	"testing"

	"evoqa/internal/agent"
	"evoqa/internal/spec"
	"evoqa/internal/testutil"
)

func plannerConfig(usePlanner bool) spec.Config {
	return spec.Config{
		UsePlanner: usePlanner,
		Planner: spec.StageConfig{
			SystemPrompt: "You are a planning assistant.",
			MaxTokens:    128,
		},
		Solver: spec.StageConfig{
			SystemPrompt: "Answer the question.",
			MaxTokens:    64,
		},
	}
}

// TestRunWithoutPlanner verifies the planner stage is never invoked
// when use_planner is off.
func TestRunWithoutPlanner(t *testing.T) {
	provider := &testutil.ScriptedProvider{Responses: []string{"Paris"}}
	pipeline := agent.Pipeline{Provider: provider}

	answer, err := pipeline.Run(context.Background(), "What is the capital of France?", plannerConfig(false))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if answer != "Paris" {
		t.Fatalf("expected Paris, got %q", answer)
	}
	calls := provider.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected exactly one provider call, got %d", len(calls))
	}
	call := calls[0]
	if call.SystemPrompt != "Answer the question." {
		t.Fatalf("unexpected solver prompt: %q", call.SystemPrompt)
	}
	if call.UserContent != "Question: What is the capital of France?" {
		t.Fatalf("unexpected solver input: %q", call.UserContent)
	}
	if call.MaxTokens != 64 {
		t.Fatalf("unexpected solver budget: %d", call.MaxTokens)
	}
}

// TestRunWithPlanner verifies the planner runs first and its plan is
// appended to the solver input.
func TestRunWithPlanner(t *testing.T) {
	provider := &testutil.ScriptedProvider{Responses: []string{"1. Recall geography.", "Paris"}}
	pipeline := agent.Pipeline{Provider: provider}

	answer, err := pipeline.Run(context.Background(), "What is the capital of France?", plannerConfig(true))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if answer != "Paris" {
		t.Fatalf("expected Paris, got %q", answer)
	}
	calls := provider.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected two provider calls, got %d", len(calls))
	}
	if calls[0].SystemPrompt != "You are a planning assistant." {
		t.Fatalf("unexpected planner prompt: %q", calls[0].SystemPrompt)
	}
	if calls[0].UserContent != "Question: What is the capital of France?" {
		t.Fatalf("unexpected planner input: %q", calls[0].UserContent)
	}
	if calls[0].MaxTokens != 128 {
		t.Fatalf("unexpected planner budget: %d", calls[0].MaxTokens)
	}
	want := "Question: What is the capital of France?\nPlan: 1. Recall geography."
	if calls[1].UserContent != want {
		t.Fatalf("unexpected solver input: %q", calls[1].UserContent)
	}
}

// TestRunEmptyPlanOmitsPlanLine verifies an empty plan leaves the
// solver input bare.
func TestRunEmptyPlanOmitsPlanLine(t *testing.T) {
	provider := &testutil.ScriptedProvider{Responses: []string{"", "Paris"}}
	pipeline := agent.Pipeline{Provider: provider}

	if _, err := pipeline.Run(context.Background(), "What is the capital of France?", plannerConfig(true)); err != nil {
		t.Fatalf("run: %v", err)
	}
	calls := provider.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected two provider calls, got %d", len(calls))
	}
	if calls[1].UserContent != "Question: What is the capital of France?" {
		t.Fatalf("expected plan line omitted, got %q", calls[1].UserContent)
	}
}

// TestRunPlannerErrorPropagates verifies a planner failure aborts the
// pipeline before the solver runs.
func TestRunPlannerErrorPropagates(t *testing.T) {
	boom := errors.New("rate limited")
	provider := &testutil.ScriptedProvider{Err: boom}
	pipeline := agent.Pipeline{Provider: provider}

	_, err := pipeline.Run(context.Background(), "Q", plannerConfig(true))
	if !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if provider.CallCount() != 1 {
		t.Fatalf("expected solver to be skipped, got %d calls", provider.CallCount())
	}
}
