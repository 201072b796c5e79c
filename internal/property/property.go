// Package property implements the typed, bounded values a menu exposes for
// editing: fixed-width text rendering, whole-value stepping, positional digit
// editing and the persistence round-trip.
//
// Property is a closed set of variants. Callers dispatch on the concrete type
// (*Bool, *Enum, *Unsigned[T], *Signed[T], *Hex[T], *Float, *Time, *Date) and
// never reach the variant metadata through any other path.
package property

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TextWidth bounds every rendered property value.
const TextWidth = 16

// BigDelta is the step applied by the fast next/prev events.
const BigDelta = 10

// Kind identifies a property variant.
type Kind int

const (
	KindBool Kind = iota
	KindEnum
	KindU8
	KindU16
	KindU32
	KindI8
	KindI16
	KindI32
	KindH8
	KindH16
	KindH32
	KindFloat
	KindTime
	KindDate
)

var kindNames = [...]string{
	KindBool:  "bool",
	KindEnum:  "enum",
	KindU8:    "u8",
	KindU16:   "u16",
	KindU32:   "u32",
	KindI8:    "i8",
	KindI16:   "i16",
	KindI32:   "i32",
	KindH8:    "h8",
	KindH16:   "h16",
	KindH32:   "h32",
	KindFloat: "float",
	KindTime:  "time",
	KindDate:  "date",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Slot addresses a property in the persistence backend. The zero value is
// NoPersist.
type Slot uint16

// NoPersist marks a property that is never stored or loaded.
const NoPersist Slot = 0

// Policy selects how an out-of-range persisted value is normalized on load.
type Policy int

const (
	ClampMin Policy = iota
	ClampMax
	ClampMid
	LeaveAsIs
)

var policyNames = map[Policy]string{
	ClampMin:  "min",
	ClampMax:  "max",
	ClampMid:  "mid",
	LeaveAsIs: "any",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(value string) (Policy, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for policy, name := range policyNames {
		if name == needle {
			return policy, nil
		}
	}
	return ClampMin, fmt.Errorf("unknown out-of-range policy %q (want min, max, mid or any)", value)
}

var (
	// ErrNotEditable reports a variant that has no textual edit path.
	ErrNotEditable = errors.New("property: not editable as text")
	// ErrShortRead reports a backend that returned fewer bytes than requested.
	ErrShortRead = errors.New("property: short read from backend")
	// ErrUnset reports a slot that has never been written. Backends return
	// it (possibly wrapped) so loads can keep the cell's default.
	ErrUnset = errors.New("property: slot never written")
)

// Property is the sealed interface implemented by every variant.
type Property interface {
	Kind() Kind

	slot() Slot
	cell() any
	render() string
	step(delta int)
	assign(text string) error
	snapshot() func()
	width() int
	encode() []byte
	decode(data []byte, policy Policy) bool
}

// SlotOf reports the persistence slot of p.
func SlotOf(p Property) Slot {
	if p == nil {
		return NoPersist
	}
	return p.slot()
}

// CellOf returns the value cell backing p, as passed to notification
// callbacks.
func CellOf(p Property) any {
	if p == nil {
		return nil
	}
	return p.cell()
}

// Bool is a two-state property rendered through Labels.
type Bool struct {
	Cell   *Cell[bool]
	Slot   Slot
	Labels [2]string
}

func (*Bool) Kind() Kind         { return KindBool }
func (p *Bool) slot() Slot       { return p.Slot }
func (p *Bool) cell() any        { return p.Cell }
func (p *Bool) width() int       { return 1 }
func (p *Bool) snapshot() func() { return snapshotOf(p.Cell) }

// Enum selects one of Labels by index.
type Enum struct {
	Cell   *Cell[uint8]
	Slot   Slot
	Labels []string
}

func (*Enum) Kind() Kind         { return KindEnum }
func (p *Enum) slot() Slot       { return p.Slot }
func (p *Enum) cell() any        { return p.Cell }
func (p *Enum) width() int       { return 1 }
func (p *Enum) snapshot() func() { return snapshotOf(p.Cell) }

// Unsigned is a bounded unsigned decimal. Digits sets the rendered width and
// defaults to 3 for uint8 and 5 otherwise. A zero Min and Max leave the full
// range of T available.
type Unsigned[T uint8 | uint16 | uint32] struct {
	Cell     *Cell[T]
	Slot     Slot
	Min, Max T
	Digits   int
}

func (*Unsigned[T]) Kind() Kind {
	switch any(T(0)).(type) {
	case uint8:
		return KindU8
	case uint16:
		return KindU16
	default:
		return KindU32
	}
}
func (p *Unsigned[T]) slot() Slot       { return p.Slot }
func (p *Unsigned[T]) cell() any        { return p.Cell }
func (p *Unsigned[T]) width() int       { return sizeOf[T]() }
func (p *Unsigned[T]) snapshot() func() { return snapshotOf(p.Cell) }

// Signed is a bounded signed decimal rendered with an explicit sign.
type Signed[T int8 | int16 | int32] struct {
	Cell     *Cell[T]
	Slot     Slot
	Min, Max T
}

func (*Signed[T]) Kind() Kind {
	switch any(T(0)).(type) {
	case int8:
		return KindI8
	case int16:
		return KindI16
	default:
		return KindI32
	}
}
func (p *Signed[T]) slot() Slot       { return p.Slot }
func (p *Signed[T]) cell() any        { return p.Cell }
func (p *Signed[T]) width() int       { return sizeOf[T]() }
func (p *Signed[T]) snapshot() func() { return snapshotOf(p.Cell) }

// Hex is a bounded unsigned value rendered as upper-case hexadecimal, two
// digits per byte.
type Hex[T uint8 | uint16 | uint32] struct {
	Cell     *Cell[T]
	Slot     Slot
	Min, Max T
}

func (*Hex[T]) Kind() Kind {
	switch any(T(0)).(type) {
	case uint8:
		return KindH8
	case uint16:
		return KindH16
	default:
		return KindH32
	}
}
func (p *Hex[T]) slot() Slot       { return p.Slot }
func (p *Hex[T]) cell() any        { return p.Cell }
func (p *Hex[T]) width() int       { return sizeOf[T]() }
func (p *Hex[T]) snapshot() func() { return snapshotOf(p.Cell) }

// Float is a bounded decimal. Width is the rendered length including sign
// and decimal point, Frac the number of fractional digits.
type Float struct {
	Cell     *Cell[float32]
	Slot     Slot
	Min, Max float32
	Width    int
	Frac     int
}

func (*Float) Kind() Kind         { return KindFloat }
func (p *Float) slot() Slot       { return p.Slot }
func (p *Float) cell() any        { return p.Cell }
func (p *Float) width() int       { return 4 }
func (p *Float) snapshot() func() { return snapshotOf(p.Cell) }

// Time exposes the hour and minute of a clock cell.
type Time struct {
	Cell     *Cell[time.Time]
	Slot     Slot
	Location *time.Location
}

func (*Time) Kind() Kind         { return KindTime }
func (p *Time) slot() Slot       { return p.Slot }
func (p *Time) cell() any        { return p.Cell }
func (p *Time) width() int       { return 8 }
func (p *Time) snapshot() func() { return snapshotOf(p.Cell) }

// Date exposes the day, month and two-digit year of a clock cell. Years are
// 2000 based.
type Date struct {
	Cell     *Cell[time.Time]
	Slot     Slot
	Location *time.Location
}

func (*Date) Kind() Kind         { return KindDate }
func (p *Date) slot() Slot       { return p.Slot }
func (p *Date) cell() any        { return p.Cell }
func (p *Date) width() int       { return 8 }
func (p *Date) snapshot() func() { return snapshotOf(p.Cell) }

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

func snapshotOf[T any](c *Cell[T]) func() {
	v := c.Load()
	return func() { c.Store(v) }
}

func sizeOf[T uint8 | uint16 | uint32 | int8 | int16 | int32]() int {
	switch any(T(0)).(type) {
	case uint8, int8:
		return 1
	case uint16, int16:
		return 2
	default:
		return 4
	}
}
