package runner

// Result aggregates one completed benchmark pass. SuccessRate is
// correct/NumExamples, or 0.0 for an empty set.
type Result struct {
	SuccessRate float64 `json:"success_rate"`
	NumExamples int     `json:"num_examples"`
}

// ExampleResult records the outcome of a single benchmark example.
type ExampleResult struct {
	Index    int
	Question string
	Answer   string
	Correct  bool
}
