// Package menu models the device menu as a forest of linked items: commands,
// editable properties and submenus, terminated by the None sentinel. A tree
// is declared with Root, Sub, Prop and Cmd, linked once by Build, and walked
// without recursion for bulk persistence.
package menu

import (
	"strings"
	"unicode"

	"github.com/atomicstack/devmenu/internal/property"
)

// Kind tags a menu item.
type Kind int

const (
	KindNone Kind = iota
	KindCommand
	KindProperty
	KindSubmenu
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindProperty:
		return "property"
	case KindSubmenu:
		return "submenu"
	default:
		return "none"
	}
}

// Callback is invoked when a command is entered or a property edit is
// committed. Commands receive a nil cell, properties their value cell.
// Returning false ends the menu session.
type Callback func(cell any) bool

// Item is a node of the menu forest. Items are linked once by Build and are
// read-only afterwards; only the value cells behind properties change.
type Item struct {
	kind     Kind
	id       string
	name     string
	prev     *Item
	next     *Item
	parent   *Item
	child    *Item
	callback Callback
	prop     property.Property
	readOnly bool
}

// None terminates every sibling list and stands in for "no item". Its
// neighbours are itself, so traversal past it is a no-op.
var None = newSentinel()

func newSentinel() *Item {
	s := &Item{kind: KindNone}
	s.prev, s.next, s.parent, s.child = s, s, s, s
	return s
}

// IsNone reports whether i is the sentinel (or nil).
func (i *Item) IsNone() bool {
	return i == nil || i.kind == KindNone
}

func (i *Item) Kind() Kind {
	if i.IsNone() {
		return KindNone
	}
	return i.kind
}

func (i *Item) ID() string {
	if i.IsNone() {
		return ""
	}
	return i.id
}

func (i *Item) Name() string {
	if i.IsNone() {
		return ""
	}
	return i.name
}

// Next returns the following sibling or None.
func (i *Item) Next() *Item {
	if i.IsNone() {
		return None
	}
	return i.next
}

// Prev returns the preceding sibling or None.
func (i *Item) Prev() *Item {
	if i.IsNone() {
		return None
	}
	return i.prev
}

// Parent returns the submenu item whose list contains i, or None for a root.
func (i *Item) Parent() *Item {
	if i.IsNone() {
		return None
	}
	return i.parent
}

// Child returns the first item of a submenu's list, None for other kinds.
func (i *Item) Child() *Item {
	if i.IsNone() {
		return None
	}
	return i.child
}

// Property returns the payload of a property item, nil for other kinds.
func (i *Item) Property() property.Property {
	if i.IsNone() {
		return nil
	}
	return i.prop
}

// ReadOnly reports whether the item's value may be shown but not edited.
func (i *Item) ReadOnly() bool {
	return !i.IsNone() && i.readOnly
}

// Callback returns the notification hook, which may be nil.
func (i *Item) Callback() Callback {
	if i.IsNone() {
		return nil
	}
	return i.callback
}

// Notify invokes the item's callback with the cell it is entitled to. Items
// without a callback continue the session.
func (i *Item) Notify() bool {
	cb := i.Callback()
	if cb == nil {
		return true
	}
	if i.kind == KindProperty {
		return cb(property.CellOf(i.prop))
	}
	return cb(nil)
}

// IsRoot reports whether i heads a tree, i.e. has no parent.
func (i *Item) IsRoot() bool {
	return !i.IsNone() && i.parent.IsNone()
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	if idx := strings.LastIndex(id, ":"); idx >= 0 {
		id = id[idx+1:]
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		runes := []rune(part)
		if len(runes) == 0 {
			continue
		}
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
