package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/devmenu/internal/logging/events"
)

// Request encapsulates a device command invocation.
type Request struct {
	ID    string
	Label string
	Run   func() error
}

// Result is delivered back to the program once a request has run.
type Result struct {
	ID    string
	Label string
	Err   error
}

// Outcome summarises the result for tracing: "ok" or the error text.
func (r Result) Outcome() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return "ok"
}

// Bus coordinates the execution of device commands off the update loop.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		res := Result{ID: req.ID, Label: req.Label, Err: req.Run()}
		events.Command.Result(req.ID, req.Label, res.Outcome())
		return res
	}
}
