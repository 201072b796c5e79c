package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/devmenu/internal/logging/events"
	"github.com/atomicstack/devmenu/internal/property"
)

// Walk visits first, its siblings and every nested list in depth-first
// order. It keeps an explicit stack, so menu depth never grows the call
// stack.
func Walk(first *Item, fn func(*Item)) {
	stack := []*Item{first}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.IsNone() {
			continue
		}
		fn(it)
		stack = append(stack, it.Next())
		if it.Kind() == KindSubmenu {
			stack = append(stack, it.Child())
		}
	}
}

// StoreAll persists every property reachable from first. A failing slot does
// not stop the others; all failures are returned together.
func StoreAll(first *Item, backend property.Backend) error {
	var errs []error
	Walk(first, func(it *Item) {
		p := it.Property()
		if p == nil {
			return
		}
		if err := property.Store(p, backend); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", it.ID(), err))
			return
		}
		events.Property.Store(it.ID(), int(property.SlotOf(p)), property.Text(p))
	})
	return errors.Join(errs...)
}

// LoadAll restores every property reachable from first, normalizing out of
// range values per policy, and notifies each property item afterwards.
// Slots the backend has never written keep their current value.
func LoadAll(first *Item, backend property.Backend, policy property.Policy) error {
	var errs []error
	Walk(first, func(it *Item) {
		p := it.Property()
		if p == nil {
			return
		}
		normalized, err := property.Load(p, backend, policy)
		if errors.Is(err, property.ErrUnset) {
			return
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", it.ID(), err))
			return
		}
		if normalized {
			events.Property.Normalize(it.ID(), policy.String(), property.Text(p))
		}
		events.Property.Load(it.ID(), int(property.SlotOf(p)), property.Text(p))
		it.Notify()
	})
	return errors.Join(errs...)
}
