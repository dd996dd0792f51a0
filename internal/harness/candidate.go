// Package harness loads candidate configurations and exposes the
// scoring contract an external optimizer calls as its objective
// function.
package harness

import (
	"context"
	"os"

	"evoqa/internal/agent"
	"evoqa/internal/config"
	"evoqa/internal/question"
	"evoqa/internal/runner"
	"evoqa/internal/spec"
)

// Candidate is the capability contract a loaded unit must expose: one
// benchmark pass returning its metrics. Candidates are isolated values;
// nothing is shared between loads beyond the read-only provider handle.
type Candidate interface {
	RunBenchmark(ctx context.Context, opts runner.Options) (runner.Result, error)
}

// Loader scores candidate locations for the external optimizer. A nil
// Examples slice falls back to the built-in benchmark set.
type Loader struct {
	Provider agent.Provider
	Examples []question.Example
}

// Load resolves location to a candidate config file and binds it to the
// benchmark contract. Unreadable or unparseable locations return a
// *LoadError; payloads that parse but violate the contract schema
// return a *ContractError.
func (l Loader) Load(location string) (Candidate, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, &LoadError{Location: location, Err: err}
	}
	cfg, err := config.Parse(data, location)
	if err != nil {
		return nil, &LoadError{Location: location, Err: err}
	}
	config.Normalize(&cfg)
	if err := config.Validate(&cfg); err != nil {
		return nil, &ContractError{Location: location, Err: err}
	}
	return configCandidate{
		cfg:    cfg,
		runner: runner.Runner{Provider: l.Provider, Examples: l.examples()},
	}, nil
}

func (l Loader) examples() []question.Example {
	if l.Examples != nil {
		return l.Examples
	}
	return question.DefaultSet().Examples
}

// configCandidate binds a validated candidate configuration to the
// benchmark runner, satisfying the Candidate contract.
type configCandidate struct {
	cfg    spec.Config
	runner runner.Runner
}

func (c configCandidate) RunBenchmark(ctx context.Context, opts runner.Options) (runner.Result, error) {
	return c.runner.RunBenchmark(ctx, c.cfg, opts)
}
