package state

import (
	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/property"
	"github.com/google/uuid"
)

// Mode is the controller's interaction mode.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeToggleEdit
	ModeDigitEdit
)

func (m Mode) String() string {
	switch m {
	case ModeToggleEdit:
		return "toggle-edit"
	case ModeDigitEdit:
		return "digit-edit"
	default:
		return "browse"
	}
}

// NoSeparator marks a field without a fixed non-editable character.
const NoSeparator = -1

// EditSession holds the transient state of one edit: the value to restore
// on cancel and, for digit editing, the cursor within the rendered field.
// Positions count from the right end of the field.
type EditSession struct {
	ID        uuid.UUID
	Item      *menu.Item
	Backup    property.Snapshot
	Position  int
	Length    int
	Separator int
	// Second is an additional separator position, used by dates.
	Second int
}

// NewEditSession snapshots the property of item.
func NewEditSession(item *menu.Item) *EditSession {
	return &EditSession{
		ID:        uuid.New(),
		Item:      item,
		Backup:    property.Take(item.Property()),
		Separator: NoSeparator,
		Second:    NoSeparator,
	}
}

// Advance moves the cursor one field to the left, stepping over separators
// and wrapping back to the rightmost position at the end of the field. It
// reports whether the cursor moved.
func (s *EditSession) Advance() bool {
	if s.Length <= 0 {
		return false
	}
	old := s.Position
	s.Position++
	if s.Position == s.Separator {
		s.Position++
	}
	if s.Position == s.Second {
		s.Position++
	}
	if s.Position >= s.Length {
		s.Position = 0
	}
	return s.Position != old
}

// Rollback restores the value captured when the session started.
func (s *EditSession) Rollback() {
	s.Backup.Restore()
}
