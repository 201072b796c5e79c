// Package lcd emulates the character display the menu is drawn on: one title
// line naming the current list, followed by the visible window of items.
package lcd

import (
	"strings"

	"github.com/atomicstack/devmenu/internal/controller"
	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/ui/state"
)

// Marker flags the current item in column zero.
const Marker = '>'

const titleFill = '='

// Display keeps the last rendered frame as plain text lines of exactly
// Layout.Width bytes.
type Display struct {
	Layout menu.Layout

	frame  controller.Frame
	lines  []string
	frames int
}

// New returns a blank display.
func New(layout menu.Layout) *Display {
	if layout.Width <= 0 {
		layout = menu.DefaultLayout
	}
	return &Display{Layout: layout}
}

// Render implements controller.Renderer.
func (d *Display) Render(f controller.Frame) {
	d.frame = f
	d.frames++
	lines := make([]string, 0, len(f.Rows)+1)
	lines = append(lines, TitleLine(f.Current.Parent(), d.Layout.Width))
	for _, it := range f.Rows {
		line := []byte(menu.ItemText(it, d.Layout))
		if it == f.Current && !it.IsNone() && len(line) > 0 {
			line[0] = Marker
		}
		lines = append(lines, string(line))
	}
	d.lines = lines
}

// Frames reports how many frames have been rendered.
func (d *Display) Frames() int { return d.frames }

// Frame returns the last rendered frame.
func (d *Display) Frame() controller.Frame { return d.frame }

// Lines returns the last rendered lines. With blank set, the part being
// edited is cleared: the whole value while toggle-editing, the digit under
// the cursor while digit-editing.
func (d *Display) Lines(blank bool) []string {
	out := append([]string(nil), d.lines...)
	if !blank || d.frame.Mode == state.ModeBrowse {
		return out
	}
	row := d.currentRow()
	if row < 0 {
		return out
	}
	line := []byte(out[row])
	from, to := d.blinkSpan()
	for i := from; i < to && i < len(line); i++ {
		if i >= 0 {
			line[i] = ' '
		}
	}
	out[row] = string(line)
	return out
}

// String joins the unblanked lines.
func (d *Display) String() string {
	return strings.Join(d.lines, "\n")
}

func (d *Display) currentRow() int {
	for i, it := range d.frame.Rows {
		if it == d.frame.Current {
			return i + 1
		}
	}
	return -1
}

func (d *Display) blinkSpan() (int, int) {
	end := d.Layout.Width - d.Layout.SpaceRight
	switch d.frame.Mode {
	case state.ModeToggleEdit:
		return menu.ValueColumn(d.frame.Current, d.Layout), end
	case state.ModeDigitEdit:
		col := end - 1 - d.frame.Cursor
		return col, col + 1
	}
	return 0, 0
}

// TitleLine centers the name of parent in a line of fill characters.
func TitleLine(parent *menu.Item, width int) string {
	if width <= 0 {
		return ""
	}
	name := parent.Name()
	if name == "" {
		return strings.Repeat(string(titleFill), width)
	}
	name = " " + name + " "
	if len(name) >= width {
		return name[:width]
	}
	left := (width - len(name)) / 2
	right := width - len(name) - left
	return strings.Repeat(string(titleFill), left) + name + strings.Repeat(string(titleFill), right)
}
