package property

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Backend reads and writes raw slot contents. Implementations must treat
// NoPersist as a no-op as well.
type Backend interface {
	Read(slot Slot, width int) ([]byte, error)
	Write(slot Slot, data []byte) error
}

// Width reports the number of bytes p occupies in its slot.
func Width(p Property) int {
	return p.width()
}

// Store writes the current value of p to its slot. It blocks until the
// backend has completed the write.
func Store(p Property, b Backend) error {
	if p == nil || b == nil || p.slot() == NoPersist {
		return nil
	}
	if err := b.Write(p.slot(), p.encode()); err != nil {
		return fmt.Errorf("store slot %d: %w", p.slot(), err)
	}
	return nil
}

// Load reads the slot of p into its cell. A value outside the variant's
// bounds is normalized according to policy; normalized reports whether that
// happened.
func Load(p Property, b Backend, policy Policy) (normalized bool, err error) {
	if p == nil || b == nil || p.slot() == NoPersist {
		return false, nil
	}
	data, err := b.Read(p.slot(), p.width())
	if err != nil {
		return false, fmt.Errorf("load slot %d: %w", p.slot(), err)
	}
	if len(data) < p.width() {
		return false, fmt.Errorf("load slot %d: %w", p.slot(), ErrShortRead)
	}
	return p.decode(data[:p.width()], policy), nil
}

// Snapshot is a saved value that can be written back into its cell.
type Snapshot struct {
	restore func()
}

// Take captures the current value of p.
func Take(p Property) Snapshot {
	if p == nil {
		return Snapshot{}
	}
	return Snapshot{restore: p.snapshot()}
}

// Restore writes the captured value back.
func (s Snapshot) Restore() {
	if s.restore != nil {
		s.restore()
	}
}

func (p *Bool) encode() []byte {
	if p.Cell.Load() {
		return []byte{1}
	}
	return []byte{0}
}

func (p *Bool) decode(data []byte, policy Policy) bool {
	raw := data[0]
	if raw <= 1 {
		p.Cell.Store(raw == 1)
		return false
	}
	switch policy {
	case ClampMax:
		p.Cell.Store(true)
	case LeaveAsIs:
		p.Cell.Store(true)
		return false
	default:
		p.Cell.Store(false)
	}
	return true
}

func (p *Enum) encode() []byte {
	return []byte{p.Cell.Load()}
}

func (p *Enum) decode(data []byte, policy Policy) bool {
	raw := data[0]
	count := len(p.Labels)
	if int(raw) < count {
		p.Cell.Store(raw)
		return false
	}
	if policy == LeaveAsIs || count == 0 {
		p.Cell.Store(raw)
		return false
	}
	p.Cell.Store(uint8(normalizeInt(int64(raw), 0, int64(count-1), policy)))
	return true
}

func (p *Unsigned[T]) encode() []byte { return encodeInt(p.Cell.Load()) }

func (p *Unsigned[T]) decode(data []byte, policy Policy) bool {
	lo, hi := p.bounds()
	return decodeInt(p.Cell, data, lo, hi, policy)
}

func (p *Signed[T]) encode() []byte { return encodeInt(p.Cell.Load()) }

func (p *Signed[T]) decode(data []byte, policy Policy) bool {
	lo, hi := p.bounds()
	return decodeInt(p.Cell, data, lo, hi, policy)
}

func (p *Hex[T]) encode() []byte { return encodeInt(p.Cell.Load()) }

func (p *Hex[T]) decode(data []byte, policy Policy) bool {
	lo, hi := p.bounds()
	return decodeInt(p.Cell, data, lo, hi, policy)
}

func (p *Float) encode() []byte {
	return binary.LittleEndian.AppendUint32(nil, math.Float32bits(p.Cell.Load()))
}

func (p *Float) decode(data []byte, policy Policy) bool {
	v := math.Float32frombits(binary.LittleEndian.Uint32(data))
	lo, hi := p.bounds()
	if !math.IsNaN(float64(v)) && v >= lo && v <= hi {
		p.Cell.Store(v)
		return false
	}
	switch policy {
	case ClampMax:
		v = hi
	case ClampMid:
		// halves first: hi-lo overflows for the full float32 range
		v = lo/2 + hi/2
	case LeaveAsIs:
		p.Cell.Store(v)
		return false
	default:
		v = lo
	}
	p.Cell.Store(v)
	return true
}

func (p *Time) encode() []byte { return encodeClock(p.Cell.Load()) }

func (p *Time) decode(data []byte, _ Policy) bool {
	p.Cell.Store(decodeClock(data, location(p.Location)))
	return false
}

func (p *Date) encode() []byte { return encodeClock(p.Cell.Load()) }

func (p *Date) decode(data []byte, _ Policy) bool {
	p.Cell.Store(decodeClock(data, location(p.Location)))
	return false
}

func encodeInt[T uint8 | uint16 | uint32 | int8 | int16 | int32](v T) []byte {
	buf := binary.LittleEndian.AppendUint64(nil, uint64(int64(v)))
	return buf[:sizeOf[T]()]
}

func decodeInt[T uint8 | uint16 | uint32 | int8 | int16 | int32](cell *Cell[T], data []byte, lo, hi T, policy Policy) bool {
	var raw uint64
	for i := len(data) - 1; i >= 0; i-- {
		raw = raw<<8 | uint64(data[i])
	}
	v := T(raw)
	if v >= lo && v <= hi {
		cell.Store(v)
		return false
	}
	if policy == LeaveAsIs {
		cell.Store(v)
		return false
	}
	cell.Store(T(normalizeInt(int64(v), int64(lo), int64(hi), policy)))
	return true
}

func normalizeInt(v, lo, hi int64, policy Policy) int64 {
	switch policy {
	case ClampMax:
		return hi
	case ClampMid:
		return lo + (hi-lo)/2
	case LeaveAsIs:
		return v
	default:
		return lo
	}
}

func encodeClock(t time.Time) []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(t.Unix()))
}

func decodeClock(data []byte, loc *time.Location) time.Time {
	return time.Unix(int64(binary.LittleEndian.Uint64(data)), 0).In(loc)
}
