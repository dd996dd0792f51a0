package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"evoqa/internal/runner"
)

// Controller runs the live UI and implements runner.Observer.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller writing to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// OnRunStart forwards run metadata to the UI.
func (c *Controller) OnRunStart(roundID, candidate string) {
	c.send(Event{Kind: EventRunStart, RoundID: roundID, Candidate: candidate})
}

// OnEvent forwards benchmark status updates to the UI.
func (c *Controller) OnEvent(event runner.Event) {
	c.send(Event{Kind: EventExample, Example: event})
	if event.Type == runner.EventFinished {
		c.send(Event{Kind: EventRunEnd})
	}
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// send enqueues an event without blocking the benchmark loop.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
