package events

import "github.com/atomicstack/devmenu/internal/logging"

type PropertyTracer struct{}

var Property = PropertyTracer{}

func (PropertyTracer) Store(itemID string, slot int, value string) {
	logging.Trace("property.store", map[string]interface{}{"item": itemID, "slot": slot, "value": value})
}

func (PropertyTracer) Load(itemID string, slot int, value string) {
	logging.Trace("property.load", map[string]interface{}{"item": itemID, "slot": slot, "value": value})
}

func (PropertyTracer) Normalize(itemID, policy, value string) {
	logging.Trace("property.normalize", map[string]interface{}{"item": itemID, "policy": policy, "value": value})
}

func (PropertyTracer) Set(itemID, input, value string) {
	logging.Trace("property.set", map[string]interface{}{"item": itemID, "input": input, "value": value})
}
