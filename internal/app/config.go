package app

import (
	"time"

	"github.com/atomicstack/devmenu/internal/property"
	"github.com/atomicstack/devmenu/internal/storage"
)

// Config describes user-provided application options.
type Config struct {
	// Width is the number of display columns, Rows the number of visible
	// menu items below the title line.
	Width int
	Rows  int

	Policy         property.Policy
	LoadOnStart    bool
	StoreOnCommit  bool
	NotifyOnChange bool

	Storage     storage.Kind
	StoragePath string

	// Tick is how often the emulated inputs fire.
	Tick  time.Duration
	Rates []uint32

	ShowFooter bool
	Blink      bool
}
