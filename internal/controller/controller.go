// Package controller runs the menu state machine: it consumes discrete
// events, walks the menu tree, drives the two edit modes and tells a
// Renderer what to show after every visible change.
//
// A Controller is owned by one goroutine. Value cells are the only state it
// shares with the rest of the program.
package controller

import (
	"github.com/atomicstack/devmenu/internal/logging/events"
	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/property"
	"github.com/atomicstack/devmenu/internal/ui/state"
)

// Event is one debounced input.
type Event int

const (
	EventNone Event = iota
	EventEnter
	EventEscape
	EventNext
	EventPrev
	EventEditStart
	// EventFastNext and EventFastPrev step by property.BigDelta while
	// toggle-editing and behave like Next and Prev otherwise.
	EventFastNext
	EventFastPrev
)

var eventNames = [...]string{
	EventNone:      "none",
	EventEnter:     "enter",
	EventEscape:    "escape",
	EventNext:      "next",
	EventPrev:      "prev",
	EventEditStart: "edit",
	EventFastNext:  "fast-next",
	EventFastPrev:  "fast-prev",
}

func (e Event) String() string {
	if e >= 0 && int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Frame is what a Renderer needs to draw the menu.
type Frame struct {
	Current *menu.Item
	First   *menu.Item
	Rows    []*menu.Item
	Height  int
	Mode    state.Mode
	// Cursor is the digit-edit position counted from the right end of the
	// value, -1 outside digit edit.
	Cursor int
}

// Renderer draws a frame. It must show property text unchanged apart from
// cursor or blink decoration.
type Renderer interface {
	Render(Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

func (f RendererFunc) Render(frame Frame) { f(frame) }

const defaultWindowHeight = 3

// Option configures a Controller.
type Option func(*Controller)

// WithBackend sets where properties are persisted.
func WithBackend(b property.Backend) Option {
	return func(c *Controller) { c.backend = b }
}

// WithPolicy sets how out-of-range persisted values are normalized.
func WithPolicy(p property.Policy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithLoadOnStart loads every property from the backend in Start.
func WithLoadOnStart(enabled bool) Option {
	return func(c *Controller) { c.loadOnStart = enabled }
}

// WithStoreOnCommit persists a property as soon as its edit is committed.
func WithStoreOnCommit(enabled bool) Option {
	return func(c *Controller) { c.storeOnCommit = enabled }
}

// WithNotifyOnChange calls a property's callback after every change made
// while editing, not only on commit.
func WithNotifyOnChange(enabled bool) Option {
	return func(c *Controller) { c.notifyOnChange = enabled }
}

// WithWindowHeight sets how many items are visible at once.
func WithWindowHeight(height int) Option {
	return func(c *Controller) { c.height = height }
}

// Controller owns the navigation state: the current item, the visible
// window, the mode and the edit session, if any.
type Controller struct {
	tree     *menu.Tree
	renderer Renderer

	current *menu.Item
	window  *state.Window
	mode    state.Mode
	session *state.EditSession

	backend        property.Backend
	policy         property.Policy
	height         int
	loadOnStart    bool
	storeOnCommit  bool
	notifyOnChange bool
}

// New returns a controller positioned on the first top-level item. A nil
// renderer is allowed.
func New(tree *menu.Tree, renderer Renderer, opts ...Option) *Controller {
	c := &Controller{
		tree:     tree,
		renderer: renderer,
		height:   defaultWindowHeight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.window = state.NewWindow(c.height)
	c.current = tree.First()
	return c
}

// Start resets navigation to the first top-level item, optionally loads
// persisted values and renders the first frame. A load error is returned
// after the frame is drawn; the menu stays usable with whatever values the
// cells hold.
func (c *Controller) Start() error {
	c.current = c.tree.First()
	c.mode = state.ModeBrowse
	c.session = nil
	c.window.Reset()
	var err error
	if c.loadOnStart && c.backend != nil {
		err = menu.LoadAll(c.tree.First(), c.backend, c.policy)
	}
	c.render()
	return err
}

// StoreAll persists every property of the tree.
func (c *Controller) StoreAll() error {
	if c.backend == nil {
		return nil
	}
	return menu.StoreAll(c.tree.First(), c.backend)
}

func (c *Controller) Tree() *menu.Tree { return c.tree }

func (c *Controller) Current() *menu.Item { return c.current }

func (c *Controller) Mode() state.Mode { return c.mode }

// Session returns the active edit session, nil in browse mode.
func (c *Controller) Session() *state.EditSession { return c.session }

// First returns the first visible item.
func (c *Controller) First() *menu.Item {
	c.window.Ensure(c.current)
	return c.window.First()
}

// Visible returns the items of the current window, padded with menu.None.
func (c *Controller) Visible() []*menu.Item {
	c.window.Ensure(c.current)
	return c.window.Items()
}

// Cursor returns the digit-edit position, -1 outside digit edit.
func (c *Controller) Cursor() int {
	if c.mode != state.ModeDigitEdit || c.session == nil {
		return -1
	}
	return c.session.Position
}

// Frame computes the current frame, settling the window first.
func (c *Controller) Frame() Frame {
	if moved := c.window.Ensure(c.current); moved {
		events.Menu.Window(c.window.First().ID(), c.window.Height)
	}
	return Frame{
		Current: c.current,
		First:   c.window.First(),
		Rows:    c.window.Items(),
		Height:  c.window.Height,
		Mode:    c.mode,
		Cursor:  c.Cursor(),
	}
}

func (c *Controller) render() {
	frame := c.Frame()
	if c.renderer != nil {
		c.renderer.Render(frame)
	}
}

// Refresh redraws the current frame, for values changed outside the
// controller.
func (c *Controller) Refresh() {
	c.render()
}
