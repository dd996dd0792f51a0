package agent

import "context"

// Provider abstracts the chat completion capability used by both
// pipeline stages: one system instruction, one user message, one token
// budget, one trimmed response. Implementations must be safe for
// sequential reuse across calls.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userContent string, maxTokens int) (string, error)
}
