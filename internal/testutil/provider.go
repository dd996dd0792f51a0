// Package testutil provides shared fakes for exercising the pipeline
// and harness without a network provider.
package testutil

import (
	"context"
	"strings"
	"sync"
)

// Call records the inputs of one provider invocation.
type Call struct {
	SystemPrompt string
	UserContent  string
	MaxTokens    int
}

// ScriptedProvider answers completion calls from a script. Answer is
// consulted first when set; otherwise responses are returned in order,
// with the last response repeated once the script runs out. Err, when
// set, fails every call.
type ScriptedProvider struct {
	mu        sync.Mutex
	calls     []Call
	Responses []string
	Answer    func(systemPrompt, userContent string) string
	Err       error
}

// Complete records the call and replies per the script.
func (p *ScriptedProvider) Complete(_ context.Context, systemPrompt, userContent string, maxTokens int) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, Call{SystemPrompt: systemPrompt, UserContent: userContent, MaxTokens: maxTokens})
	if p.Err != nil {
		return "", p.Err
	}
	if p.Answer != nil {
		return strings.TrimSpace(p.Answer(systemPrompt, userContent)), nil
	}
	if len(p.Responses) == 0 {
		return "", nil
	}
	index := len(p.calls) - 1
	if index >= len(p.Responses) {
		index = len(p.Responses) - 1
	}
	return strings.TrimSpace(p.Responses[index]), nil
}

// Calls returns a copy of the recorded invocations.
func (p *ScriptedProvider) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

// CallCount returns how many times Complete has been invoked.
func (p *ScriptedProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}
