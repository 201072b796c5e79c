package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/ui/state"
)

const headerTitle = "devmenu"

// View implements tea.Model.
func (m *Model) View() string {
	parts := []string{
		m.fitLine(m.header(), styles.Header),
		m.panel(),
		m.statusLine(),
	}
	if m.showFooter {
		for _, line := range m.footer() {
			parts = append(parts, m.fitLine(line, styles.Footer))
		}
	}
	return strings.Join(parts, "\n")
}

// blank reports whether the edited value is in the dark half of its blink.
func (m *Model) blank() bool {
	return m.ctl.Mode() != state.ModeBrowse && m.blink.Mode() == cursor.CursorBlink && m.blink.Blink
}

func (m *Model) header() string {
	path := m.ctl.Tree().Path(m.ctl.Current())
	names := make([]string, 0, len(path)+1)
	names = append(names, headerTitle)
	for _, it := range path {
		names = append(names, it.Name())
	}
	return strings.Join(names, " › ")
}

func (m *Model) panel() string {
	lines := m.display.Lines(m.blank())
	current := m.currentRow()
	for i, line := range lines {
		style := styles.PanelRow
		switch {
		case i == 0:
			style = styles.PanelTitle
		case i == current && m.ctl.Mode() != state.ModeBrowse:
			style = styles.PanelEdit
		}
		if style != nil {
			lines[i] = style.Render(line)
		}
	}
	body := strings.Join(lines, "\n")
	if styles.Panel == nil {
		return body
	}
	return styles.Panel.Render(body)
}

func (m *Model) currentRow() int {
	frame := m.display.Frame()
	for i, it := range frame.Rows {
		if it == frame.Current {
			return i + 1
		}
	}
	return -1
}

func (m *Model) statusLine() string {
	mode := m.ctl.Mode().String()
	if styles.Mode != nil {
		mode = styles.Mode.Render(" " + mode + " ")
	}
	var text string
	var style *lipgloss.Style
	switch {
	case m.errMsg != "":
		text, style = m.errMsg, styles.Error
	case m.backendErr != "":
		text, style = m.backendErr, styles.Error
	default:
		text, style = m.describeCurrent(), styles.Status
		if info := m.currentInfo(); info != "" {
			text, style = info, styles.Info
		}
	}
	avail := m.width - ansi.StringWidth(mode) - 1
	if m.width > 0 && avail > 0 && ansi.StringWidth(text) > avail {
		text = truncate.StringWithTail(text, uint(avail), "…")
	}
	if style != nil {
		text = style.Render(text)
	}
	return mode + " " + text
}

// describeCurrent names the kind of the current item and, for properties,
// the slot it is stored in.
func (m *Model) describeCurrent() string {
	it := m.ctl.Current()
	switch it.Kind() {
	case menu.KindProperty:
		desc := it.Property().Kind().String()
		if s := m.ctl.Session(); s != nil && m.ctl.Mode() == state.ModeDigitEdit {
			desc += " digit " + strconv.Itoa(s.Position)
		}
		return it.ID() + " · " + desc
	case menu.KindNone:
		return ""
	default:
		return it.ID() + " · " + it.Kind().String()
	}
}

// footer lays the key help out in as many lines as the width needs without
// splitting a binding.
func (m *Model) footer() []string {
	const sep = " • "
	var lines []string
	var cur string
	for _, b := range m.keys.help() {
		h := b.Help()
		entry := h.Key + " " + h.Desc
		switch {
		case cur == "":
			cur = entry
		case m.width > 0 && ansi.StringWidth(cur+sep+entry) > m.width:
			lines = append(lines, cur)
			cur = entry
		default:
			cur += sep + entry
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// fitLine truncates text to the model width before styling it.
func (m *Model) fitLine(text string, style *lipgloss.Style) string {
	if m.width > 0 && ansi.StringWidth(text) > m.width {
		text = truncate.StringWithTail(text, uint(m.width-1), "…")
	}
	if style != nil {
		return style.Render(text)
	}
	return text
}
