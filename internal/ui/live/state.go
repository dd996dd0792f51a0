package live

import (
	"time"

	"evoqa/internal/runner"
)

// ExampleRow holds UI state for a single benchmark example.
type ExampleRow struct {
	Index      int
	Text       string
	Answer     string
	Status     runner.EventType
	StartedAt  time.Time
	FinishedAt time.Time
	Error      string
}

// StatusCounts aggregates rows by status bucket.
type StatusCounts struct {
	Queued    int
	Running   int
	Done      int
	Correct   int
	Incorrect int
	Errors    int
}

// State captures the live UI state for one benchmark run.
type State struct {
	RoundID   string
	Candidate string
	StartedAt time.Time
	Finished  bool
	LastEvent string
	Rows      []ExampleRow
	Counts    StatusCounts
}
