package controller

import (
	"github.com/atomicstack/devmenu/internal/logging"
	"github.com/atomicstack/devmenu/internal/logging/events"
	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/property"
	"github.com/atomicstack/devmenu/internal/ui/state"
)

// Process handles one event to completion. It returns false when the menu
// session ends: a command's callback asked to stop, Escape was pressed on a
// top-level item, or there is no current item.
func (c *Controller) Process(ev Event) bool {
	switch c.mode {
	case state.ModeToggleEdit:
		c.processToggleEdit(ev)
		return true
	case state.ModeDigitEdit:
		c.processDigitEdit(ev)
		return true
	default:
		return c.processBrowse(ev)
	}
}

func (c *Controller) processBrowse(ev Event) bool {
	if c.current.IsNone() {
		return false
	}
	switch ev {
	case EventEnter:
		switch c.current.Kind() {
		case menu.KindCommand:
			events.Menu.Enter(c.current.ID(), c.current.Kind().String())
			if !c.current.Notify() {
				events.Menu.Exit(c.current.ID(), "command")
				return false
			}
		case menu.KindSubmenu:
			events.Menu.Enter(c.current.ID(), c.current.Kind().String())
			c.current.Notify()
			c.current = c.current.Child()
			c.window.Reset()
		}
		c.render()
	case EventEscape:
		parent := c.current.Parent()
		if parent.IsNone() || parent.IsRoot() {
			c.render()
			events.Menu.Exit(c.current.ID(), "escape")
			return false
		}
		events.Menu.Ascend(c.current.ID(), parent.ID())
		c.current = parent
		c.window.Reset()
		c.render()
	case EventNext, EventFastNext:
		c.move(c.current.Next())
	case EventPrev, EventFastPrev:
		c.move(c.current.Prev())
	case EventEditStart:
		c.startEdit()
	}
	return true
}

func (c *Controller) move(to *menu.Item) {
	if to.IsNone() {
		return
	}
	events.Menu.Move(c.current.ID(), to.ID())
	c.current = to
	c.render()
}

func (c *Controller) startEdit() {
	p := c.current.Property()
	if p == nil || c.current.ReadOnly() {
		return
	}
	session := state.NewEditSession(c.current)
	mode := state.ModeToggleEdit
	switch prop := p.(type) {
	case *property.Float:
		mode = state.ModeDigitEdit
		if prop.Frac > 0 {
			session.Separator = prop.Frac
		}
	case *property.Unsigned[uint32]:
		mode = state.ModeDigitEdit
	case *property.Time:
		mode = state.ModeDigitEdit
		session.Separator = 2
	case *property.Date:
		mode = state.ModeDigitEdit
		session.Separator = 2
		session.Second = 5
	}
	if mode == state.ModeDigitEdit {
		session.Length = len(property.Text(p))
	}
	c.session = session
	c.mode = mode
	events.Edit.Start(session.ID.String(), c.current.ID(), mode.String(), property.Text(p))
	c.render()
}

func (c *Controller) processToggleEdit(ev Event) {
	p := c.current.Property()
	switch ev {
	case EventNext:
		c.step(p, 1)
	case EventPrev:
		c.step(p, -1)
	case EventFastNext:
		c.step(p, property.BigDelta)
	case EventFastPrev:
		c.step(p, -property.BigDelta)
	case EventEditStart:
		c.commit()
	case EventEscape:
		c.rollback()
	}
}

func (c *Controller) step(p property.Property, delta int) {
	property.Step(p, delta)
	events.Edit.Step(c.session.ID.String(), delta, property.Text(p))
	c.changed()
	c.render()
}

func (c *Controller) processDigitEdit(ev Event) {
	p := c.current.Property()
	switch ev {
	case EventEnter:
		c.session.Advance()
		events.Edit.Cursor(c.session.ID.String(), c.session.Position)
		c.render()
	case EventNext, EventFastNext:
		c.editDigit(p, -1)
	case EventPrev, EventFastPrev:
		c.editDigit(p, 1)
	case EventEditStart:
		c.commit()
	case EventEscape:
		c.rollback()
	}
}

func (c *Controller) editDigit(p property.Property, delta int) {
	applied := property.EditDigit(p, delta, c.session.Position)
	events.Edit.Digit(c.session.ID.String(), c.session.Position, delta, property.Text(p), applied)
	if applied {
		c.changed()
	}
	c.render()
}

func (c *Controller) changed() {
	if c.notifyOnChange {
		c.current.Notify()
	}
}

func (c *Controller) commit() {
	item := c.current
	p := item.Property()
	events.Edit.Commit(c.session.ID.String(), item.ID(), property.Text(p))
	c.mode = state.ModeBrowse
	c.session = nil
	item.Notify()
	if c.storeOnCommit && c.backend != nil {
		if err := property.Store(p, c.backend); err != nil {
			logging.Error(err)
		} else {
			events.Property.Store(item.ID(), int(property.SlotOf(p)), property.Text(p))
		}
	}
	c.render()
}

func (c *Controller) rollback() {
	item := c.current
	c.session.Rollback()
	events.Edit.Rollback(c.session.ID.String(), item.ID(), property.Text(item.Property()))
	c.mode = state.ModeBrowse
	c.session = nil
	// with notify-on-change the callback saw the edited values; report the restore
	c.changed()
	c.render()
}
