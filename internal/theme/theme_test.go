package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStylesAreSet(t *testing.T) {
	s := Default()
	for name, style := range map[string]*lipgloss.Style{
		"header": s.Header, "panel": s.Panel, "title": s.PanelTitle, "row": s.PanelRow,
		"edit": s.PanelEdit, "status": s.Status, "mode": s.Mode, "error": s.Error,
		"info": s.Info, "footer": s.Footer, "blink": s.Blink,
	} {
		if style == nil {
			t.Fatalf("expected %s style", name)
		}
	}
}
