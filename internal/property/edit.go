package property

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// EditDigit changes one character of the rendered value and commits the
// re-parsed result. Positions count from the right, so position 0 is the last
// character. A decimal digit moves by delta and saturates at 0 and 9 without
// carrying, a sign character flips. The whole text is then parsed by type,
// clamped to its bounds and stored in one critical section, so the stored
// value always matches what the display shows.
//
// EditDigit reports false and leaves the value untouched when position is out
// of range, when it addresses a separator, or when p has no digit form
// (Bool, Enum, Hex).
func EditDigit(p Property, delta, position int) bool {
	if !digitEditable(p) {
		return false
	}
	buf := []byte(Text(p))
	if position < 0 || position >= len(buf) {
		return false
	}
	idx := len(buf) - 1 - position
	switch c := buf[idx]; {
	case c >= '0' && c <= '9':
		d := int(c-'0') + delta
		if d < 0 {
			d = 0
		}
		if d > 9 {
			d = 9
		}
		buf[idx] = byte('0' + d)
	case c == '+':
		buf[idx] = '-'
	case c == '-':
		buf[idx] = '+'
	default:
		return false
	}
	return p.assign(string(buf)) == nil
}

func digitEditable(p Property) bool {
	switch p.(type) {
	case *Unsigned[uint8], *Unsigned[uint16], *Unsigned[uint32],
		*Signed[int8], *Signed[int16], *Signed[int32],
		*Float, *Time, *Date:
		return true
	}
	return false
}

// SetText parses a complete textual value, clamps it and commits it. Bool
// and Enum accept their labels case-insensitively, Bool also accepts the
// strconv boolean forms and Enum a numeric index.
func SetText(p Property, text string) error {
	if p == nil {
		return ErrNotEditable
	}
	return p.assign(strings.TrimSpace(text))
}

func (p *Bool) assign(text string) error {
	for i, label := range p.Labels {
		if strings.EqualFold(label, text) {
			p.Cell.Store(i == 1)
			return nil
		}
	}
	v, err := strconv.ParseBool(text)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", p.Kind(), text, err)
	}
	p.Cell.Store(v)
	return nil
}

func (p *Enum) assign(text string) error {
	for i, label := range p.Labels {
		if strings.EqualFold(label, text) {
			p.Cell.Store(uint8(i))
			return nil
		}
	}
	idx, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("parse %s %q: no such label", p.Kind(), text)
	}
	if idx < 0 || idx >= len(p.Labels) {
		return fmt.Errorf("parse %s %q: index outside [0,%d)", p.Kind(), text, len(p.Labels))
	}
	p.Cell.Store(uint8(idx))
	return nil
}

func (p *Unsigned[T]) assign(text string) error {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", p.Kind(), text, err)
	}
	lo, hi := p.bounds()
	p.Cell.Store(clampInt(v, lo, hi))
	return nil
}

func (p *Signed[T]) assign(text string) error {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", p.Kind(), text, err)
	}
	lo, hi := p.bounds()
	p.Cell.Store(clampInt(v, lo, hi))
	return nil
}

func (p *Hex[T]) assign(text string) error {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(text), "0x"), 16, 64)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", p.Kind(), text, err)
	}
	lo, hi := p.bounds()
	p.Cell.Store(clampInt(int64(min(v, math.MaxInt64)), lo, hi))
	return nil
}

func (p *Float) assign(text string) error {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", p.Kind(), text, err)
	}
	p.Cell.Store(p.clamp(float32(v)))
	return nil
}

func (p *Float) clamp(v float32) float32 {
	lo, hi := p.bounds()
	switch {
	case math.IsNaN(float64(v)), v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func (p *Time) assign(text string) error {
	fields, err := splitFields(text, ':', 2)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", p.Kind(), text, err)
	}
	hour := clampField(fields[0], 0, 23)
	minute := clampField(fields[1], 0, 59)
	loc := location(p.Location)
	p.Cell.Update(func(old time.Time) time.Time {
		old = old.In(loc)
		return time.Date(old.Year(), old.Month(), old.Day(), hour, minute, 0, 0, loc)
	})
	return nil
}

func (p *Date) assign(text string) error {
	fields, err := splitFields(text, '/', 3)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", p.Kind(), text, err)
	}
	month := clampField(fields[1], 1, 12)
	year := 2000 + clampField(fields[2], 0, 99)
	day := clampField(fields[0], 1, daysIn(year, time.Month(month)))
	loc := location(p.Location)
	p.Cell.Update(func(old time.Time) time.Time {
		old = old.In(loc)
		return time.Date(year, time.Month(month), day, old.Hour(), old.Minute(), old.Second(), 0, loc)
	})
	return nil
}

// daysIn returns the length of month in year, so a day that no longer fits
// is clamped instead of rolling into the next month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func splitFields(text string, sep byte, want int) ([]int, error) {
	parts := strings.Split(text, string(sep))
	if len(parts) != want {
		return nil, fmt.Errorf("want %d fields separated by %q", want, sep)
	}
	fields := make([]int, want)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}
	return fields, nil
}

func clampField(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
