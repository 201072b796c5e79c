package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/devmenu/internal/controller"
)

// keyMap binds the simulator's keys to the device keypad.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Enter    key.Binding
	Escape   key.Binding
	Edit     key.Binding
	FastNext key.Binding
	FastPrev key.Binding
	Save     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Prev:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
		Enter:    key.NewBinding(key.WithKeys("enter", "l", "right"), key.WithHelp("enter", "open")),
		Escape:   key.NewBinding(key.WithKeys("esc", "h", "left"), key.WithHelp("esc", "back")),
		Edit:     key.NewBinding(key.WithKeys("e", " "), key.WithHelp("e", "edit/commit")),
		FastNext: key.NewBinding(key.WithKeys("pgdown", "J"), key.WithHelp("pgdn", "fast next")),
		FastPrev: key.NewBinding(key.WithKeys("pgup", "K"), key.WithHelp("pgup", "fast prev")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// eventFor translates a key press into a controller event.
func (k keyMap) eventFor(msg tea.KeyMsg) (controller.Event, bool) {
	switch {
	case key.Matches(msg, k.Next):
		return controller.EventNext, true
	case key.Matches(msg, k.Prev):
		return controller.EventPrev, true
	case key.Matches(msg, k.Enter):
		return controller.EventEnter, true
	case key.Matches(msg, k.Escape):
		return controller.EventEscape, true
	case key.Matches(msg, k.Edit):
		return controller.EventEditStart, true
	case key.Matches(msg, k.FastNext):
		return controller.EventFastNext, true
	case key.Matches(msg, k.FastPrev):
		return controller.EventFastPrev, true
	}
	return controller.EventNone, false
}

// help lists the bindings shown in the footer.
func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Enter, k.Escape, k.Edit, k.FastPrev, k.FastNext, k.Save, k.Quit}
}
