package dispatcher

import (
	"github.com/atomicstack/devmenu/internal/backend"
	"github.com/atomicstack/devmenu/internal/controller"
)

// Result says what a watcher event means for the display.
type Result struct {
	// Redraw is set when a visible row shows a value the event changed.
	Redraw bool
	// Visible lists the changed item ids that are on screen.
	Visible []string
	Err     error
}

// Dispatcher maps watcher events onto the frame currently shown.
type Dispatcher struct {
	frame func() controller.Frame
}

// New returns a dispatcher that asks frame for what is on screen.
func New(frame func() controller.Frame) *Dispatcher {
	return &Dispatcher{frame: frame}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	if len(evt.Items) == 0 || d.frame == nil {
		return res
	}
	shown := make(map[string]struct{})
	for _, it := range d.frame().Rows {
		if !it.IsNone() {
			shown[it.ID()] = struct{}{}
		}
	}
	for _, id := range evt.Items {
		if _, ok := shown[id]; ok {
			res.Visible = append(res.Visible, id)
		}
	}
	res.Redraw = len(res.Visible) > 0
	return res
}
