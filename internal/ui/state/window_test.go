package state

import (
	"fmt"
	"testing"

	"github.com/atomicstack/devmenu/internal/menu"
)

func newTestList(t *testing.T, n int) []*menu.Item {
	t.Helper()
	defs := make([]menu.Def, n)
	for i := range defs {
		defs[i] = menu.Cmd(fmt.Sprintf("item-%d", i+1), "", nil)
	}
	tree, err := menu.Build(menu.Root("root", "Test", defs...))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	items := make([]*menu.Item, 0, n)
	for it := tree.First(); !it.IsNone(); it = it.Next() {
		items = append(items, it)
	}
	return items
}

func windowIDs(w *Window) []string {
	var ids []string
	for _, it := range w.Items() {
		ids = append(ids, it.ID())
	}
	return ids
}

func TestEnsureStartsPendingWindowAtCurrent(t *testing.T) {
	items := newTestList(t, 8)
	w := NewWindow(3)
	if !w.First().IsNone() {
		t.Fatalf("expected new window to be pending")
	}
	if !w.Ensure(items[4]) {
		t.Fatalf("expected pending window to move")
	}
	if w.First() != items[4] {
		t.Fatalf("expected window to start at current, got %s", w.First().ID())
	}
}

func TestEnsureKeepsWindowContainingCurrent(t *testing.T) {
	items := newTestList(t, 8)
	w := NewWindow(3)
	w.Ensure(items[0])
	for _, idx := range []int{0, 1, 2} {
		if w.Ensure(items[idx]) {
			t.Fatalf("expected window to stay put for item %d", idx+1)
		}
		if w.First() != items[0] {
			t.Fatalf("expected first item-1, got %s", w.First().ID())
		}
	}
}

func TestEnsureSlidesToMinimalWindow(t *testing.T) {
	items := newTestList(t, 8)
	w := NewWindow(3)
	w.Ensure(items[0])
	if !w.Ensure(items[4]) {
		t.Fatalf("expected window to move")
	}
	if w.First() != items[2] {
		t.Fatalf("expected window [3,5], got first %s", w.First().ID())
	}
}

func TestEnsureStepsOneItemPerMove(t *testing.T) {
	items := newTestList(t, 8)
	w := NewWindow(3)
	w.Ensure(items[0])
	for i := 1; i < len(items); i++ {
		w.Ensure(items[i])
		want := 0
		if i >= 3 {
			want = i - 2
		}
		if w.First() != items[want] {
			t.Fatalf("at item %d expected first %s, got %s", i+1, items[want].ID(), w.First().ID())
		}
	}
	for i := len(items) - 2; i >= 0; i-- {
		before := w.First()
		w.Ensure(items[i])
		if w.First() != before && w.First() != before.Prev() {
			t.Fatalf("expected window to move back by at most one item")
		}
		if !w.Contains(items[i]) {
			t.Fatalf("expected item %d visible", i+1)
		}
	}
	if w.First() != items[0] {
		t.Fatalf("expected window back at the start, got %s", w.First().ID())
	}
}

func TestEnsureRestartsForForeignItem(t *testing.T) {
	items := newTestList(t, 4)
	other := newTestList(t, 2)
	w := NewWindow(2)
	w.Ensure(items[0])
	w.Ensure(other[1])
	if w.First() != other[1] {
		t.Fatalf("expected restart at foreign item, got %s", w.First().ID())
	}
}

func TestResetMarksPending(t *testing.T) {
	items := newTestList(t, 4)
	w := NewWindow(2)
	w.Ensure(items[0])
	w.Reset()
	w.Ensure(items[3])
	if w.First() != items[3] {
		t.Fatalf("expected recompute at current after reset")
	}
}

func TestItemsPadsWithNone(t *testing.T) {
	items := newTestList(t, 4)
	w := NewWindow(3)
	w.Ensure(items[3])
	ids := windowIDs(w)
	if len(ids) != 3 || ids[0] != "item-4" || ids[1] != "" || ids[2] != "" {
		t.Fatalf("unexpected rows %v", ids)
	}
	if w.Ensure(menu.None) {
		t.Fatalf("expected None current to be ignored")
	}
}

func TestNewWindowClampsHeight(t *testing.T) {
	w := NewWindow(0)
	if w.Height != 1 {
		t.Fatalf("expected height 1, got %d", w.Height)
	}
}
