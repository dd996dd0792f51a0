package agent

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// defaultModel is the fixed completion model used by both stages.
const defaultModel = openai.GPT4oMini

// OpenAIProvider implements Provider against the OpenAI chat
// completions API. The client handle is read-only after construction
// and reusable across sequential calls.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// ProviderFromEnv builds a provider from OPENAI_API_KEY. The key is
// resolved exactly once here; a missing key is a startup failure, not a
// per-call one.
func ProviderFromEnv() (*OpenAIProvider, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return NewOpenAIProvider(apiKey, ""), nil
}

// NewOpenAIProvider constructs a provider with an explicit key and an
// optional model override.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends one system+user chat completion request and returns
// the trimmed response text. Provider errors propagate to the caller
// unhandled: no retry, no timeout beyond the caller's context. An empty
// choice list yields an empty string, not an error.
func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, userContent string, maxTokens int) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
