package storage

import (
	"fmt"
	"sync"

	"github.com/atomicstack/devmenu/internal/property"
)

// erased is the value of a never-written EEPROM cell.
const erased = 0xFF

// Image is an in-memory EEPROM. A fresh image reads back as erased bytes,
// which properties normalize on load.
type Image struct {
	mu   sync.Mutex
	data []byte
}

// NewImage returns an erased image of size bytes.
func NewImage(size int) *Image {
	data := make([]byte, size)
	for i := range data {
		data[i] = erased
	}
	return &Image{data: data}
}

func (m *Image) Read(slot property.Slot, width int) ([]byte, error) {
	if slot == property.NoPersist {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.bounds(slot, width); err != nil {
		return nil, err
	}
	out := make([]byte, width)
	copy(out, m.data[int(slot):])
	return out, nil
}

func (m *Image) Write(slot property.Slot, data []byte) error {
	if slot == property.NoPersist {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.bounds(slot, len(data)); err != nil {
		return err
	}
	copy(m.data[int(slot):], data)
	return nil
}

// Bytes returns a copy of the whole image.
func (m *Image) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

func (m *Image) Close() error { return nil }

func (m *Image) bounds(slot property.Slot, width int) error {
	if width < 0 || int(slot)+width > len(m.data) {
		return fmt.Errorf("image: %d bytes at 0x%02X exceed %d byte image", width, int(slot), len(m.data))
	}
	return nil
}
