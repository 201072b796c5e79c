package storage

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"

	"github.com/atomicstack/devmenu/internal/property"
)

// Disk keeps one file per slot under a base directory.
type Disk struct {
	d *diskv.Diskv
}

// NewDisk returns a diskv backend rooted at basePath.
func NewDisk(basePath string) *Disk {
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
	})}
}

func slotKey(slot property.Slot) string {
	return fmt.Sprintf("slot-%04x", uint16(slot))
}

func (d *Disk) Read(slot property.Slot, width int) ([]byte, error) {
	if slot == property.NoPersist {
		return nil, nil
	}
	data, err := d.d.Read(slotKey(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("diskv %s: %w", slotKey(slot), property.ErrUnset)
	}
	if err != nil {
		return nil, err
	}
	if len(data) > width {
		data = data[:width]
	}
	return data, nil
}

func (d *Disk) Write(slot property.Slot, data []byte) error {
	if slot == property.NoPersist {
		return nil
	}
	return d.d.Write(slotKey(slot), data)
}

// Erase removes every slot file.
func (d *Disk) Erase() error {
	return d.d.EraseAll()
}

func (d *Disk) Close() error { return nil }
