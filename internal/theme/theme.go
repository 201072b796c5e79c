package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the simulator.
type Styles struct {
	Header *lipgloss.Style
	// Panel frames the emulated character display.
	Panel      *lipgloss.Style
	PanelTitle *lipgloss.Style
	PanelRow   *lipgloss.Style
	PanelEdit  *lipgloss.Style
	Status     *lipgloss.Style
	Mode       *lipgloss.Style
	Error      *lipgloss.Style
	Info       *lipgloss.Style
	Footer     *lipgloss.Style
	Blink      *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Panel: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("34")),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("112")).Bold(true),
	),
	PanelRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("112")),
	),
	PanelEdit: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("148")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Mode: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Blink: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
