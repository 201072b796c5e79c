package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/devmenu/internal/backend"
	"github.com/atomicstack/devmenu/internal/controller"
	"github.com/atomicstack/devmenu/internal/data/dispatcher"
	"github.com/atomicstack/devmenu/internal/lcd"
	"github.com/atomicstack/devmenu/internal/theme"
	"github.com/atomicstack/devmenu/internal/ui/command"
)

const infoTTL = 3 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options wires a Model to the rest of the program.
type Options struct {
	// Controller must have been built with Display as its renderer.
	Controller *controller.Controller
	Display    *lcd.Display
	Watcher    *backend.Watcher
	// Save persists every setting; nil disables the save key.
	Save       func() error
	Width      int
	Height     int
	ShowFooter bool
	// Blink animates the edited value. Tests turn it off so commands never
	// sleep.
	Blink bool
}

// Model implements the Bubble Tea model for the device simulator.
type Model struct {
	ctl        *controller.Controller
	display    *lcd.Display
	backend    *backend.Watcher
	backendErr string
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	save       func() error
	keys       keyMap

	blink      cursor.Model
	blinkDirty bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	done        bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the simulator around an already started controller.
func NewModel(opts Options) *Model {
	m := &Model{
		ctl:        opts.Controller,
		display:    opts.Display,
		backend:    opts.Watcher,
		dispatcher: dispatcher.New(opts.Controller.Frame),
		bus:        command.New(),
		save:       opts.Save,
		keys:       defaultKeyMap(),
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Blink != nil {
		c.Style = styles.Blink.Copy()
	}
	if !opts.Blink {
		c.SetMode(cursor.CursorStatic)
	}
	m.blink = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.blink.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	var blinkCmd tea.Cmd
	m.blink, blinkCmd = m.blink.Update(msg)
	if blinkCmd != nil {
		cmds = append(cmds, blinkCmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Done reports whether the menu session has ended.
func (m *Model) Done() bool { return m.done }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate restarts the blink after a key press so the edited value is
// visible right after it changes.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.blinkDirty {
		m.blinkDirty = false
		m.blink.Blink = false
		if cmd := m.blink.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) setInfo(msg string) {
	m.infoMsg = msg
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if time.Now().After(m.infoExpire) {
		m.infoMsg = ""
	}
	return m.infoMsg
}
