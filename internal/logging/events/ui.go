package events

import "github.com/atomicstack/devmenu/internal/logging"

type MenuTracer struct{}

type EditTracer struct{}

type CommandTracer struct{}

type UITracer struct{}

var (
	UI      = UITracer{}
	Menu    = MenuTracer{}
	Edit    = EditTracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(key, event, mode string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "event": event, "mode": mode})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (MenuTracer) Enter(itemID, kind string) {
	logging.Trace("menu.enter", map[string]interface{}{"item": itemID, "kind": kind})
}

func (MenuTracer) Ascend(from, to string) {
	logging.Trace("menu.ascend", map[string]interface{}{"from": from, "to": to})
}

func (MenuTracer) Move(from, to string) {
	logging.Trace("menu.move", map[string]interface{}{"from": from, "to": to})
}

func (MenuTracer) Exit(itemID, reason string) {
	logging.Trace("menu.exit", map[string]interface{}{"item": itemID, "reason": reason})
}

func (MenuTracer) Window(first string, height int) {
	logging.Trace("menu.window", map[string]interface{}{"first": first, "height": height})
}

func (EditTracer) Start(session, itemID, mode, value string) {
	logging.Trace("edit.start", map[string]interface{}{"session": session, "item": itemID, "mode": mode, "value": value})
}

func (EditTracer) Step(session string, delta int, value string) {
	logging.Trace("edit.step", map[string]interface{}{"session": session, "delta": delta, "value": value})
}

func (EditTracer) Digit(session string, position, delta int, value string, applied bool) {
	logging.Trace("edit.digit", map[string]interface{}{
		"session":  session,
		"position": position,
		"delta":    delta,
		"value":    value,
		"applied":  applied,
	})
}

func (EditTracer) Cursor(session string, position int) {
	logging.Trace("edit.cursor", map[string]interface{}{"session": session, "position": position})
}

func (EditTracer) Commit(session, itemID, value string) {
	logging.Trace("edit.commit", map[string]interface{}{"session": session, "item": itemID, "value": value})
}

func (EditTracer) Rollback(session, itemID, value string) {
	logging.Trace("edit.rollback", map[string]interface{}{"session": session, "item": itemID, "value": value})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, outcome string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "outcome": outcome})
}
