package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const defaultSeparator = "  "

// Table collects rows and pads them to the widest entry in each column.
// Widths ignore ANSI escapes, so styled cells line up.
type Table struct {
	Separator string
	Align     []Alignment
	rows      [][]string
}

// New returns an empty table with the given column alignments. Columns
// beyond the list are left aligned.
func New(align ...Alignment) *Table {
	return &Table{Separator: defaultSeparator, Align: align}
}

// AddRow appends a row. Rows may have different lengths.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Lines renders every row. Trailing padding is trimmed.
func (t *Table) Lines() []string {
	if len(t.rows) == 0 {
		return nil
	}
	var widths []int
	for _, row := range t.rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(t.Separator)
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if c < len(t.Align) && t.Align[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func (t *Table) String() string {
	return strings.Join(t.Lines(), "\n")
}
