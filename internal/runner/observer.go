package runner

// EventType identifies a benchmark status update for observers.
type EventType string

const (
	// EventQueued marks an example known but not yet started.
	EventQueued EventType = "queued"
	// EventRunning marks an active pipeline call.
	EventRunning EventType = "running"
	// EventCorrect marks a correct answer.
	EventCorrect EventType = "correct"
	// EventIncorrect marks an incorrect answer.
	EventIncorrect EventType = "incorrect"
	// EventError marks a provider failure that aborts the run.
	EventError EventType = "error"
	// EventFinished marks the end of a completed run.
	EventFinished EventType = "finished"
)

// Event describes a status change during a benchmark run. Index and
// Total let consumers track progress independent of delivery order.
type Event struct {
	Type     EventType
	Index    int
	Total    int
	Question string
	Answer   string
	Correct  int
	Err      error
}

// Observer receives benchmark events. Implementations must return
// quickly; the runner calls them inline between provider calls.
type Observer interface {
	OnEvent(Event)
}

// emit forwards an event when an observer is configured.
func emit(observer Observer, event Event) {
	if observer != nil {
		observer.OnEvent(event)
	}
}
