package property

import (
	"fmt"
	"math"
)

const unknownLabel = "?"

// Text renders p in its canonical fixed-width form. The result never exceeds
// TextWidth characters.
func Text(p Property) string {
	if p == nil {
		return ""
	}
	text := p.render()
	if len(text) > TextWidth {
		text = text[:TextWidth]
	}
	return text
}

func (p *Bool) render() string {
	if p.Cell.Load() {
		return p.Labels[1]
	}
	return p.Labels[0]
}

func (p *Enum) render() string {
	idx := int(p.Cell.Load())
	if idx >= len(p.Labels) {
		return unknownLabel
	}
	return p.Labels[idx]
}

func (p *Unsigned[T]) render() string {
	return fmt.Sprintf("%0*d", p.digits(), p.Cell.Load())
}

func (p *Unsigned[T]) digits() int {
	if p.Digits > 0 {
		return p.Digits
	}
	if sizeOf[T]() == 1 {
		return 3
	}
	return 5
}

func (p *Signed[T]) render() string {
	// width counts the sign
	var width int
	switch sizeOf[T]() {
	case 1:
		width = 4
	case 2:
		width = 6
	default:
		width = 11
	}
	return fmt.Sprintf("%+0*d", width, p.Cell.Load())
}

func (p *Hex[T]) render() string {
	return fmt.Sprintf("%0*X", sizeOf[T]()*2, p.Cell.Load())
}

func (p *Float) render() string {
	return fmt.Sprintf("%+0*.*f", p.textWidth(), p.frac(), p.Cell.Load())
}

func (p *Float) textWidth() int {
	if p.Width > 0 {
		return p.Width
	}
	return 7
}

func (p *Float) frac() int {
	if p.Frac < 0 {
		return 0
	}
	return p.Frac
}

func (p *Time) render() string {
	return p.Cell.Load().In(location(p.Location)).Format("15:04")
}

func (p *Date) render() string {
	return p.Cell.Load().In(location(p.Location)).Format("02/01/06")
}

// Step changes p by a whole-value increment. Bool flips regardless of delta,
// Enum moves one label forward or back with wraparound, integers add delta
// and clamp to their bounds. Float, Time and Date are only digit-editable and
// ignore Step.
func Step(p Property, delta int) {
	if p == nil || delta == 0 {
		return
	}
	p.step(delta)
}

func (p *Bool) step(int) {
	p.Cell.Update(func(v bool) bool { return !v })
}

func (p *Enum) step(delta int) {
	count := len(p.Labels)
	if count == 0 {
		return
	}
	p.Cell.Update(func(v uint8) uint8 {
		idx := int(v)
		if idx >= count {
			idx = count - 1
			if delta > 0 {
				idx = -1
			}
		}
		if delta > 0 {
			idx = (idx + 1) % count
		} else {
			idx = (idx + count - 1) % count
		}
		return uint8(idx)
	})
}

func (p *Unsigned[T]) step(delta int) {
	lo, hi := p.bounds()
	p.Cell.Update(func(v T) T { return clampInt(int64(v)+int64(delta), lo, hi) })
}

func (p *Unsigned[T]) bounds() (T, T) {
	if p.Min == 0 && p.Max == 0 {
		return 0, unsignedMax[T]()
	}
	return p.Min, p.Max
}

func (p *Signed[T]) step(delta int) {
	lo, hi := p.bounds()
	p.Cell.Update(func(v T) T { return clampInt(int64(v)+int64(delta), lo, hi) })
}

func (p *Signed[T]) bounds() (T, T) {
	if p.Min == 0 && p.Max == 0 {
		return signedLimits[T]()
	}
	return p.Min, p.Max
}

func (p *Hex[T]) step(delta int) {
	lo, hi := p.bounds()
	p.Cell.Update(func(v T) T { return clampInt(int64(v)+int64(delta), lo, hi) })
}

func (p *Hex[T]) bounds() (T, T) {
	if p.Min == 0 && p.Max == 0 {
		return 0, unsignedMax[T]()
	}
	return p.Min, p.Max
}

func (p *Float) step(int) {}

func (p *Float) bounds() (float32, float32) {
	if p.Min == 0 && p.Max == 0 {
		return -math.MaxFloat32, math.MaxFloat32
	}
	return p.Min, p.Max
}

func (p *Time) step(int) {}

func (p *Date) step(int) {}

func clampInt[T uint8 | uint16 | uint32 | int8 | int16 | int32](v int64, lo, hi T) T {
	if v < int64(lo) {
		return lo
	}
	if v > int64(hi) {
		return hi
	}
	return T(v)
}

func unsignedMax[T uint8 | uint16 | uint32]() T {
	return ^T(0)
}

func signedLimits[T int8 | int16 | int32]() (T, T) {
	bits := uint(sizeOf[T]() * 8)
	hi := int64(1)<<(bits-1) - 1
	return T(-hi - 1), T(hi)
}
