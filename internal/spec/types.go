package spec

// Config is the candidate configuration payload an external optimizer
// rewrites wholesale between rounds. A Config is owned by exactly one
// evaluation call and is never mutated in place.
type Config struct {
	UsePlanner bool        `json:"use_planner" yaml:"use_planner"`
	Planner    StageConfig `json:"planner" yaml:"planner"`
	Solver     StageConfig `json:"solver" yaml:"solver"`
}

// StageConfig configures a single completion stage of the pipeline.
type StageConfig struct {
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt"`
	MaxTokens    int    `json:"max_tokens" yaml:"max_tokens"`
}
