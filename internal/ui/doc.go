// Package ui contains the Bubble Tea program that simulates the device: the
// character display, its four-key keypad and the live inputs feeding the
// value cells.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Every message is
//     first offered to the blink cursor, then routed through a typed handler
//     registry so each tea.Msg is handled by a focused function.
//   - Key presses are mapped to controller events (keys.go) and handed to the
//     controller, which drives the menu state machine and redraws the
//     lcd.Display it was built with.
//   - Save requests run through the internal/ui/command bus so storage I/O
//     happens off the update loop.
//
// Rendering:
//   - The controller owns what the display shows. The view only decorates the
//     display's lines: it frames them, layers the edit blink on top using the
//     cursor's blink phase and adds a status line and key help.
//
// Backend interactions:
//   - A backend.Watcher emulates pulse inputs and the clock. Update waits for
//     its events and hands them to the dispatcher, which reports whether any
//     changed value is on screen; only then is the display refreshed.
package ui
