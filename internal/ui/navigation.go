package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/devmenu/internal/logging/events"
	"github.com/atomicstack/devmenu/internal/ui/command"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		events.UI.Key(keyMsg.String(), "quit", m.ctl.Mode().String())
		m.done = true
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Save):
		return m.saveCmd()
	}
	ev, ok := m.keys.eventFor(keyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String(), ev.String(), m.ctl.Mode().String())
	m.blinkDirty = true
	m.errMsg = ""
	if !m.ctl.Process(ev) {
		m.done = true
		return tea.Quit
	}
	return nil
}

func (m *Model) saveCmd() tea.Cmd {
	if m.save == nil {
		return nil
	}
	m.setInfo("saving...")
	return m.bus.Execute(command.Request{ID: "save", Label: "Save", Run: m.save})
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.Err != nil {
		m.infoMsg = ""
		m.errMsg = res.Label + ": " + res.Err.Error()
		return nil
	}
	m.errMsg = ""
	m.setInfo(res.Label + ": done")
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	events.UI.Resize(size.Width, size.Height)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}
