package menu

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Tree is a built menu: a root title item whose children are the top-level
// entries, plus an id index over every item.
type Tree struct {
	root  *Item
	byID  map[string]*Item
	order []*Item
}

// Root returns the title item.
func (t *Tree) Root() *Item {
	if t == nil || t.root == nil {
		return None
	}
	return t.root
}

// First returns the first top-level item.
func (t *Tree) First() *Item {
	return t.Root().Child()
}

// Find looks up an item by id.
func (t *Tree) Find(id string) (*Item, bool) {
	if t == nil {
		return None, false
	}
	item, ok := t.byID[strings.TrimSpace(id)]
	if !ok {
		return None, false
	}
	return item, true
}

// Items lists every item below the root in depth-first order.
func (t *Tree) Items() []*Item {
	if t == nil || len(t.order) < 2 {
		return nil
	}
	out := make([]*Item, len(t.order)-1)
	copy(out, t.order[1:])
	return out
}

// Path returns the chain of items from the top level down to item. The root
// title item is not included.
func (t *Tree) Path(item *Item) []*Item {
	var path []*Item
	for it := item; !it.IsNone() && !it.IsRoot(); it = it.Parent() {
		path = append(path, it)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Depth reports how many submenus enclose item; top-level items have depth 0.
func (t *Tree) Depth(item *Item) int {
	if n := len(t.Path(item)); n > 0 {
		return n - 1
	}
	return 0
}

// Search resolves a query to items. An exact id match wins; otherwise ids
// and names are fuzzy matched and ranked by distance.
func (t *Tree) Search(query string) []*Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	if item, ok := t.Find(trimmed); ok {
		return []*Item{item}
	}
	type candidate struct {
		item     *Item
		distance int
	}
	var found []candidate
	for _, item := range t.Items() {
		best := -1
		for _, target := range []string{item.ID(), item.Name()} {
			if d := fuzzy.RankMatchNormalizedFold(trimmed, target); d >= 0 && (best < 0 || d < best) {
				best = d
			}
		}
		if best >= 0 {
			found = append(found, candidate{item: item, distance: best})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].distance < found[j].distance })
	out := make([]*Item, len(found))
	for i, c := range found {
		out[i] = c.item
	}
	return out
}
