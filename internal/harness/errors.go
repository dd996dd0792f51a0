package harness

import "fmt"

// LoadError reports a candidate location that could not be resolved or
// instantiated. The optimizer must see it as a failed evaluation, never
// as a zero score.
type LoadError struct {
	Location string
	Err      error
}

// Error returns a readable load failure message.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load candidate %q: %v", e.Location, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ContractError reports a candidate that loaded but does not satisfy
// the benchmark contract. It is reported distinctly from a load
// failure.
type ContractError struct {
	Location string
	Err      error
}

// Error returns a readable contract failure message.
func (e *ContractError) Error() string {
	return fmt.Sprintf("candidate %q does not satisfy the benchmark contract: %v", e.Location, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ContractError) Unwrap() error {
	return e.Err
}
