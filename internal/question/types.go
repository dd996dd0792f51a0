package question

// Set defines the benchmark set schema loaded from JSON or YAML.
type Set struct {
	Version  int       `json:"version" yaml:"version"`
	Examples []Example `json:"examples" yaml:"examples"`
}

// Example pairs a benchmark question with the substring a correct
// answer must contain after normalization.
type Example struct {
	Question          string `json:"question" yaml:"question"`
	ExpectedSubstring string `json:"expected_substring" yaml:"expected_substring"`
}
