package events

import "github.com/atomicstack/devmenu/internal/logging"

type BackendTracer struct{}

type StorageTracer struct{}

var (
	Backend = BackendTracer{}
	Storage = StorageTracer{}
)

func (BackendTracer) Tick(source string, value interface{}) {
	logging.Trace("backend.tick", map[string]interface{}{"source": source, "value": value})
}

func (StorageTracer) Open(kind, path string) {
	logging.Trace("storage.open", map[string]interface{}{"kind": kind, "path": path})
}
