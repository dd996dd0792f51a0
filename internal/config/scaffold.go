package config

import (
	"fmt"
	"os"
)

// defaultCandidate is the deliberately weak starting configuration: the
// planner is enabled but the solver prompt never grounds an answer, so
// the optimizer has obvious headroom to improve.
const defaultCandidate = `use_planner: true

planner:
  system_prompt: >
    You are a planning assistant. Given a question, write 2-4 short
    steps that would help answer the question. Keep steps concise.
  max_tokens: 128

solver:
  system_prompt: >
    You are an intelligent assistant. Use the plan provided to answer
    the question as accurately as possible.
  max_tokens: 32
`

// Scaffold writes the starter candidate config to candidatePath. It
// refuses to overwrite an existing file so a tuned candidate is never
// clobbered.
func Scaffold(candidatePath string) error {
	if candidatePath == "" {
		return fmt.Errorf("candidate path is required")
	}
	if info, err := os.Stat(candidatePath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("candidate path %q is a directory", candidatePath)
		}
		return fmt.Errorf("candidate file already exists at %q", candidatePath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat candidate file: %w", err)
	}
	if err := os.WriteFile(candidatePath, []byte(defaultCandidate), 0o644); err != nil {
		return fmt.Errorf("write candidate file: %w", err)
	}
	return nil
}
