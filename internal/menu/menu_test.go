package menu

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/devmenu/internal/property"
)

type slotBackend map[property.Slot][]byte

func (b slotBackend) Read(slot property.Slot, width int) ([]byte, error) {
	return append([]byte(nil), b[slot]...), nil
}

func (b slotBackend) Write(slot property.Slot, data []byte) error {
	b[slot] = append([]byte(nil), data...)
	return nil
}

func newTestTree(t *testing.T) (*Tree, *property.Unsigned[uint8], *property.Bool) {
	t.Helper()
	level := &property.Unsigned[uint8]{Cell: property.NewCell[uint8](5), Slot: 1, Max: 12}
	flag := &property.Bool{Cell: property.NewCell(false), Slot: 2, Labels: [2]string{"OFF", "ON"}}
	tree, err := Build(Root("root", "MAIN",
		Prop("level", "Level", level, nil),
		Sub("settings", "Settings",
			Prop("settings:flag", "Flag", flag, nil),
			Cmd("settings:reset", "", nil),
		),
		Cmd("exit", "Exit", func(any) bool { return false }),
	))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return tree, level, flag
}

func TestSentinelTraversalIsClosed(t *testing.T) {
	if !None.IsNone() {
		t.Fatalf("expected None to be the sentinel")
	}
	for _, next := range []*Item{None.Next(), None.Prev(), None.Parent(), None.Child()} {
		if !next.IsNone() {
			t.Fatalf("expected traversal from None to stay on None")
		}
	}
	var nilItem *Item
	if !nilItem.IsNone() || !nilItem.Next().IsNone() {
		t.Fatalf("expected nil item to behave as None")
	}
}

func TestBuildLinksSiblingsAndParents(t *testing.T) {
	tree, _, _ := newTestTree(t)
	root := tree.Root()
	if !root.IsRoot() || root.Name() != "MAIN" {
		t.Fatalf("unexpected root %q", root.Name())
	}
	first := tree.First()
	if first.ID() != "level" {
		t.Fatalf("expected first top-level item level, got %q", first.ID())
	}
	if !first.Prev().IsNone() {
		t.Fatalf("expected first item to have no predecessor")
	}
	settings := first.Next()
	if settings.Kind() != KindSubmenu || settings.Child().ID() != "settings:flag" {
		t.Fatalf("unexpected settings item %q", settings.ID())
	}
	if settings.Child().Parent() != settings {
		t.Fatalf("expected child parent to be the submenu")
	}
	if first.Parent() != root {
		t.Fatalf("expected top-level parent to be the root")
	}
	reset := settings.Child().Next()
	if reset.Name() != "Reset" {
		t.Fatalf("expected derived name Reset, got %q", reset.Name())
	}
	if !reset.Next().IsNone() || !settings.Next().Next().Next().IsNone() {
		t.Fatalf("expected lists to terminate with None")
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	tree, _, _ := newTestTree(t)
	for _, item := range tree.Items() {
		if next := item.Next(); !next.IsNone() && next.Prev() != item {
			t.Fatalf("next/prev mismatch at %s", item.ID())
		}
		if prev := item.Prev(); !prev.IsNone() && prev.Next() != item {
			t.Fatalf("prev/next mismatch at %s", item.ID())
		}
	}
}

func TestBuildRejectsInvalidDefinitions(t *testing.T) {
	cases := []struct {
		name string
		def  Def
		want error
	}{
		{"empty submenu", Root("root", "R", Sub("empty", "Empty")), ErrEmptySubmenu},
		{"duplicate", Root("root", "R", Cmd("a", "A", nil), Cmd("a", "B", nil)), ErrDuplicateID},
		{"missing id", Root("root", "R", Cmd(" ", "A", nil)), ErrMissingID},
		{"missing property", Root("root", "R", Prop("p", "P", nil, nil)), ErrMissingProperty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.def)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if _, err := Build(Cmd("root", "R", nil)); err == nil {
		t.Fatalf("expected error for non-submenu root")
	}
}

func TestWalkVisitsEveryItemIncludingLast(t *testing.T) {
	tree, _, _ := newTestTree(t)
	var ids []string
	Walk(tree.First(), func(it *Item) { ids = append(ids, it.ID()) })
	got := strings.Join(ids, ",")
	want := "level,settings,settings:flag,settings:reset,exit"
	if got != want {
		t.Fatalf("expected walk %s, got %s", want, got)
	}
}

func TestStoreAllAndLoadAll(t *testing.T) {
	tree, level, flag := newTestTree(t)
	backend := slotBackend{}
	level.Cell.Store(9)
	flag.Cell.Store(true)
	if err := StoreAll(tree.First(), backend); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if len(backend) != 2 {
		t.Fatalf("expected 2 stored slots, got %d", len(backend))
	}
	level.Cell.Store(0)
	flag.Cell.Store(false)
	backend[1] = []byte{200}
	if err := LoadAll(tree.First(), backend, property.ClampMax); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if level.Cell.Load() != 12 {
		t.Fatalf("expected out-of-range level clamped to 12, got %d", level.Cell.Load())
	}
	if !flag.Cell.Load() {
		t.Fatalf("expected nested flag restored")
	}
}

func TestLoadAllNotifiesAfterLoad(t *testing.T) {
	cell := property.NewCell[uint16](0)
	var seen []uint16
	tree := MustBuild(Root("root", "R",
		Prop("a", "A", &property.Unsigned[uint16]{Cell: cell, Slot: 4}, func(c any) bool {
			seen = append(seen, c.(*property.Cell[uint16]).Load())
			return true
		}),
	))
	backend := slotBackend{4: {0x34, 0x12}}
	if err := LoadAll(tree.First(), backend, property.ClampMin); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(seen) != 1 || seen[0] != 0x1234 {
		t.Fatalf("expected one notification with loaded value, got %v", seen)
	}
}

func TestLoadAllCollectsErrors(t *testing.T) {
	tree, level, _ := newTestTree(t)
	level.Cell.Store(3)
	err := LoadAll(tree.First(), slotBackend{}, property.ClampMin)
	if !errors.Is(err, property.ErrShortRead) {
		t.Fatalf("expected short read error, got %v", err)
	}
	if !strings.Contains(err.Error(), "level") || !strings.Contains(err.Error(), "settings:flag") {
		t.Fatalf("expected both failing items in error, got %v", err)
	}
}

func TestItemText(t *testing.T) {
	tree, _, _ := newTestTree(t)
	level, _ := tree.Find("level")
	settings, _ := tree.Find("settings")
	cases := []struct {
		item *Item
		want string
	}{
		{level, " Level           005"},
		{settings, " Settings          >"},
		{None, "                    "},
	}
	for _, tc := range cases {
		got := ItemText(tc.item, DefaultLayout)
		if got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
		if len(got) != DefaultLayout.Width {
			t.Fatalf("expected width %d, got %d", DefaultLayout.Width, len(got))
		}
	}
	if col := ValueColumn(level, DefaultLayout); col != 17 {
		t.Fatalf("expected value column 17, got %d", col)
	}
}

func TestItemTextValueOverridesLongName(t *testing.T) {
	p := &property.Unsigned[uint16]{Cell: property.NewCell[uint16](7)}
	tree := MustBuild(Root("root", "R", Prop("long", "A very long item name", p, nil)))
	got := ItemText(tree.First(), Layout{Width: 12, SpaceLeft: 0, SubmenuSymbol: '>'})
	if got != "A very 00007" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestSearchAndPath(t *testing.T) {
	tree, _, _ := newTestTree(t)
	hits := tree.Search("settings:flag")
	if len(hits) != 1 || hits[0].ID() != "settings:flag" {
		t.Fatalf("expected exact id hit, got %d hits", len(hits))
	}
	hits = tree.Search("rst")
	if len(hits) == 0 || hits[0].ID() != "settings:reset" {
		t.Fatalf("expected fuzzy hit on reset")
	}
	path := tree.Path(hits[0])
	if len(path) != 2 || path[0].ID() != "settings" {
		t.Fatalf("unexpected path length %d", len(path))
	}
	if depth := tree.Depth(hits[0]); depth != 1 {
		t.Fatalf("expected depth 1, got %d", depth)
	}
	if len(tree.Search("  ")) != 0 {
		t.Fatalf("expected no hits for blank query")
	}
}

func TestNotifyPassesCell(t *testing.T) {
	tree, level, _ := newTestTree(t)
	exit, _ := tree.Find("exit")
	if exit.Notify() {
		t.Fatalf("expected exit command to stop the session")
	}
	item, _ := tree.Find("level")
	if !item.Notify() {
		t.Fatalf("expected item without callback to continue")
	}
	if property.CellOf(item.Property()) != any(level.Cell) {
		t.Fatalf("expected property cell")
	}
}

func TestReadOnlyFlag(t *testing.T) {
	tree := MustBuild(Root("root", "R",
		Prop("count", "Count", &property.Unsigned[uint32]{Cell: property.NewCell[uint32](0)}, nil).ReadOnly(),
		Prop("level", "Level", &property.Unsigned[uint8]{Cell: property.NewCell[uint8](0)}, nil),
	))
	count, _ := tree.Find("count")
	level, _ := tree.Find("level")
	if !count.ReadOnly() || level.ReadOnly() {
		t.Fatalf("expected only count to be read-only")
	}
	if None.ReadOnly() {
		t.Fatalf("expected sentinel to report false")
	}
}
