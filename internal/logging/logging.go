// Package logging appends errors and optional JSON trace entries to one log
// file shared by the whole process.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "devmenu.log"

// sink serializes appends to the log file. The file is opened per entry so
// a rotated or deleted log is recreated on the next write.
type sink struct {
	mu    sync.Mutex
	path  string
	trace bool
}

var out = &sink{path: defaultLogFile}

func (s *sink) append(write func(io.Writer) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
	}
}

// Error appends err with a timestamp. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	out.append(func(w io.Writer) error {
		_, werr := fmt.Fprintf(w, "%s error: %v\n", time.Now().Format("2006/01/02 15:04:05"), err)
		return werr
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	out.mu.Lock()
	out.trace = enabled
	out.mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	out.mu.Lock()
	defer out.mu.Unlock()
	return out.trace
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends one JSON line for event when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := traceEntry{Time: time.Now().UTC(), Event: event, Payload: payload}
	out.append(func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	})
}

// Configure sets the log destination, creating its directory. An empty path,
// or one whose directory cannot be created, selects devmenu.log in the
// working directory.
func Configure(path string) {
	path = strings.TrimSpace(path)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			path = ""
		}
	}
	if path == "" {
		path = defaultLogFile
	}
	out.mu.Lock()
	out.path = path
	out.mu.Unlock()
}

// Path returns the current log destination.
func Path() string {
	out.mu.Lock()
	defer out.mu.Unlock()
	return out.path
}
