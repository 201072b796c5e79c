package state

import "github.com/atomicstack/devmenu/internal/menu"

// Window tracks which run of sibling items is on screen. A window whose first
// item is None is pending and restarts at the current item on the next
// Ensure.
type Window struct {
	Height int
	first  *menu.Item
}

// NewWindow returns a pending window showing height items.
func NewWindow(height int) *Window {
	if height < 1 {
		height = 1
	}
	return &Window{Height: height, first: menu.None}
}

// First returns the topmost visible item, None while pending.
func (w *Window) First() *menu.Item {
	if w.first == nil {
		return menu.None
	}
	return w.first
}

// Reset marks the window for recompute, as after entering or leaving a
// submenu.
func (w *Window) Reset() {
	w.first = menu.None
}

// Contains reports whether item is one of the visible rows.
func (w *Window) Contains(item *menu.Item) bool {
	return covers(w.First(), item, w.height())
}

// Ensure moves the window so current is visible and reports whether it
// moved. A window that still shows current is left alone; otherwise it
// slides one sibling at a time towards current, so the scroll distance is
// minimal. If current is not in the window's list at all the window restarts
// at current.
func (w *Window) Ensure(current *menu.Item) bool {
	if current.IsNone() {
		return false
	}
	if w.First().IsNone() {
		w.first = current
		return true
	}
	if w.Contains(current) {
		return false
	}
	backward := precedes(current, w.first)
	for !w.Contains(current) {
		step := w.first.Next()
		if backward {
			step = w.first.Prev()
		}
		if step.IsNone() {
			w.first = current
			break
		}
		w.first = step
	}
	return true
}

// Items returns exactly Height rows starting at the first visible item,
// padded with None past the end of the list.
func (w *Window) Items() []*menu.Item {
	rows := make([]*menu.Item, w.height())
	it := w.First()
	for i := range rows {
		rows[i] = it
		it = it.Next()
	}
	return rows
}

func (w *Window) height() int {
	if w.Height < 1 {
		return 1
	}
	return w.Height
}

func covers(from, item *menu.Item, height int) bool {
	for i := 0; i < height && !from.IsNone(); i++ {
		if from == item {
			return true
		}
		from = from.Next()
	}
	return false
}

func precedes(item, anchor *menu.Item) bool {
	for it := anchor.Prev(); !it.IsNone(); it = it.Prev() {
		if it == item {
			return true
		}
	}
	return false
}
