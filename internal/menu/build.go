package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/devmenu/internal/property"
)

var (
	ErrEmptySubmenu    = errors.New("menu: submenu has no items")
	ErrDuplicateID     = errors.New("menu: duplicate item id")
	ErrMissingID       = errors.New("menu: item without id")
	ErrMissingProperty = errors.New("menu: property item without property")
)

// Def declares one item of a menu definition. Build links a tree of Defs
// into Items.
type Def struct {
	kind     Kind
	id       string
	name     string
	callback Callback
	prop     property.Property
	readOnly bool
	children []Def
}

// Root declares the title item heading a tree. Its children are the
// top-level items.
func Root(id, name string, children ...Def) Def {
	return Sub(id, name, children...)
}

// Sub declares a submenu.
func Sub(id, name string, children ...Def) Def {
	return Def{kind: KindSubmenu, id: id, name: name, children: children}
}

// Prop declares a property item. cb may be nil.
func Prop(id, name string, p property.Property, cb Callback) Def {
	return Def{kind: KindProperty, id: id, name: name, prop: p, callback: cb}
}

// Cmd declares a command item. cb may be nil, in which case Enter does
// nothing but continue.
func Cmd(id, name string, cb Callback) Def {
	return Def{kind: KindCommand, id: id, name: name, callback: cb}
}

// Notify attaches a callback to a submenu definition; it runs when the
// submenu is entered.
func (d Def) Notify(cb Callback) Def {
	d.callback = cb
	return d
}

// ReadOnly marks a property definition as display only. Its cell is still
// rendered and persisted, but the menu never opens an edit session on it.
func (d Def) ReadOnly() Def {
	d.readOnly = true
	return d
}

// Build links root and all its descendants. The result never changes
// afterwards.
func Build(root Def) (*Tree, error) {
	if root.kind != KindSubmenu {
		return nil, fmt.Errorf("menu: root %q must be a submenu", root.id)
	}
	t := &Tree{byID: make(map[string]*Item)}
	item, err := t.link(root, None)
	if err != nil {
		return nil, err
	}
	t.root = item
	return t, nil
}

// MustBuild is Build for static definitions known to be valid.
func MustBuild(root Def) *Tree {
	t, err := Build(root)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tree) link(def Def, parent *Item) (*Item, error) {
	id := strings.TrimSpace(def.id)
	if id == "" {
		return nil, fmt.Errorf("%w (name %q)", ErrMissingID, def.name)
	}
	if _, exists := t.byID[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	name := def.name
	if name == "" {
		name = prettyLabel(id)
	}
	item := &Item{
		kind:     def.kind,
		id:       id,
		name:     name,
		prev:     None,
		next:     None,
		parent:   parent,
		child:    None,
		callback: def.callback,
		prop:     def.prop,
		readOnly: def.readOnly,
	}
	t.byID[id] = item
	t.order = append(t.order, item)

	switch def.kind {
	case KindProperty:
		if def.prop == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingProperty, id)
		}
	case KindSubmenu:
		if len(def.children) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptySubmenu, id)
		}
		prev := None
		for _, childDef := range def.children {
			child, err := t.link(childDef, item)
			if err != nil {
				return nil, err
			}
			if prev.IsNone() {
				item.child = child
			} else {
				prev.next = child
				child.prev = prev
			}
			prev = child
		}
	}
	return item, nil
}
