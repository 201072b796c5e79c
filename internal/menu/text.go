package menu

import "github.com/atomicstack/devmenu/internal/property"

// Layout describes the geometry of one display line.
type Layout struct {
	Width         int
	SpaceLeft     int
	SpaceRight    int
	SubmenuSymbol byte
}

// DefaultLayout matches a 20 column character display.
var DefaultLayout = Layout{Width: 20, SpaceLeft: 1, SpaceRight: 0, SubmenuSymbol: '>'}

// ItemText renders one line of exactly layout.Width bytes: the name after
// SpaceLeft columns, a property's value flush right before SpaceRight
// columns, or the submenu symbol in the last usable column. The value wins
// where it overlaps a long name. None renders as a blank line.
func ItemText(item *Item, layout Layout) string {
	if layout.Width <= 0 {
		return ""
	}
	buf := make([]byte, layout.Width)
	for i := range buf {
		buf[i] = ' '
	}
	if item.IsNone() {
		return string(buf)
	}
	place(buf, layout.SpaceLeft, item.Name())
	switch item.Kind() {
	case KindProperty:
		value := property.Text(item.Property())
		place(buf, layout.Width-layout.SpaceRight-len(value), value)
	case KindSubmenu:
		if pos := layout.Width - 1 - layout.SpaceRight; pos >= 0 && pos < len(buf) {
			buf[pos] = layout.SubmenuSymbol
		}
	}
	return string(buf)
}

// ValueColumn reports the column where item's value starts, or -1 when the
// item shows no value.
func ValueColumn(item *Item, layout Layout) int {
	if item.Kind() != KindProperty {
		return -1
	}
	col := layout.Width - layout.SpaceRight - len(property.Text(item.Property()))
	if col < 0 {
		col = 0
	}
	return col
}

func place(buf []byte, at int, text string) {
	for i := 0; i < len(text); i++ {
		pos := at + i
		if pos < 0 {
			continue
		}
		if pos >= len(buf) {
			return
		}
		buf[pos] = text[i]
	}
}
