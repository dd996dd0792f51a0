package live

import (
	"fmt"
	"time"

	"evoqa/internal/runner"
)

// Reduce applies a benchmark event to the UI state.
func Reduce(state State, event runner.Event) State {
	state = ensureRows(state, event)
	state = applyExampleEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRows grows the state rows to cover the event's index and total.
func ensureRows(state State, event runner.Event) State {
	needed := event.Total
	if event.Index+1 > needed {
		needed = event.Index + 1
	}
	if needed <= len(state.Rows) {
		return state
	}
	rows := make([]ExampleRow, needed)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = ExampleRow{Index: i, Status: runner.EventQueued}
	}
	state.Rows = rows
	return state
}

// applyExampleEvent updates one row with the given event.
func applyExampleEvent(state State, event runner.Event) State {
	if event.Type == runner.EventFinished {
		state.Finished = true
		return state
	}
	if event.Index < 0 || event.Index >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.Index]
	if row.Text == "" {
		row.Text = event.Question
	}
	row.Status = event.Type
	switch event.Type {
	case runner.EventRunning:
		if row.StartedAt.IsZero() {
			row.StartedAt = time.Now()
		}
	case runner.EventCorrect, runner.EventIncorrect:
		row.Answer = event.Answer
		row.FinishedAt = time.Now()
	case runner.EventError:
		if event.Err != nil {
			row.Error = event.Err.Error()
		}
		row.FinishedAt = time.Now()
	}
	state.Rows[event.Index] = row
	return state
}

// recount recomputes status counts for the current rows. Counts depend
// only on row statuses, so delivery order cannot skew them.
func recount(rows []ExampleRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.EventQueued:
			counts.Queued++
		case runner.EventRunning:
			counts.Running++
		case runner.EventCorrect:
			counts.Done++
			counts.Correct++
		case runner.EventIncorrect:
			counts.Done++
			counts.Incorrect++
		case runner.EventError:
			counts.Done++
			counts.Errors++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.Event) string {
	switch event.Type {
	case runner.EventRunning:
		return fmt.Sprintf("Q%d running", event.Index+1)
	case runner.EventCorrect:
		return fmt.Sprintf("Q%d correct", event.Index+1)
	case runner.EventIncorrect:
		return fmt.Sprintf("Q%d incorrect", event.Index+1)
	case runner.EventError:
		if event.Err != nil {
			return fmt.Sprintf("Q%d error: %v", event.Index+1, event.Err)
		}
		return fmt.Sprintf("Q%d error", event.Index+1)
	case runner.EventFinished:
		return fmt.Sprintf("Finished: %d/%d correct", event.Correct, event.Total)
	}
	return ""
}
