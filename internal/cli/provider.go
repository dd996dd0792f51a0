package cli

import "evoqa/internal/agent"

// newProvider is a test seam for provider construction. The real
// provider resolves its credential from the environment exactly once,
// before any benchmark work starts.
var newProvider = func() (agent.Provider, error) {
	return agent.ProviderFromEnv()
}
