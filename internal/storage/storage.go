// Package storage provides the persistence backends behind property slots:
// an in-memory EEPROM image, a diskv directory of slot files and a SQLite
// table. All of them implement property.Backend.
package storage

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/atomicstack/devmenu/internal/logging/events"
	"github.com/atomicstack/devmenu/internal/property"
)

// Kind names a backend implementation.
type Kind string

const (
	KindMemory Kind = "memory"
	KindDiskv  Kind = "diskv"
	KindSQLite Kind = "sqlite"
)

// ImageSize is the size of the emulated EEPROM. Slots are byte addresses
// inside it.
const ImageSize = 256

// Backend is a property.Backend that may hold resources.
type Backend interface {
	property.Backend
	io.Closer
}

// ParseKind validates a backend name.
func ParseKind(value string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(value))); k {
	case KindMemory, KindDiskv, KindSQLite:
		return k, nil
	case "":
		return KindMemory, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q (want memory, diskv or sqlite)", value)
	}
}

// Open returns the backend of the given kind rooted at path. A leading ~ in
// path is expanded to the user's home directory. The memory backend ignores
// path.
func Open(kind Kind, path string) (Backend, error) {
	dir, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand storage path: %w", err)
	}
	events.Storage.Open(string(kind), dir)
	switch kind {
	case KindMemory, "":
		return NewImage(ImageSize), nil
	case KindDiskv:
		return NewDisk(dir), nil
	case KindSQLite:
		return OpenSQLite(filepath.Join(dir, "eeprom.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
