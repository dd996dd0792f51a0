package live

import "evoqa/internal/runner"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a benchmark run.
	EventRunStart EventKind = iota
	// EventExample delivers an example status update.
	EventExample
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	RoundID   string
	Candidate string
	Example   runner.Event
}
