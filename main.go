package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/devmenu/internal/cli"
	"github.com/atomicstack/devmenu/internal/config"
	"github.com/atomicstack/devmenu/internal/logging"
	"github.com/atomicstack/devmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	if err := cli.New(traceStartup).Execute(); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"version": cli.Version,
		"tty":     probeTTY(),
	}
	addOrError(payload, "executable", os.Executable)
	addOrError(payload, "cwd", os.Getwd)
	return payload
}

func addOrError(payload map[string]interface{}, key string, fn func() (string, error)) {
	if v, err := fn(); err != nil {
		payload[key+"Error"] = err.Error()
	} else {
		payload[key] = v
	}
}

// ttyReport says which standard descriptors are terminals. The simulator
// needs one for the alternate screen; the trace helps when it has none.
type ttyReport struct {
	Size   *ttySize   `json:"size,omitempty"`
	Probes []ttyProbe `json:"probes"`
}

type ttySize struct {
	From   string `json:"from"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Error    string `json:"error,omitempty"`
}

func probeTTY() ttyReport {
	var report ttyReport
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := ttyProbe{Name: strings.TrimPrefix(f.Name(), "/dev/")}
		fd := int(f.Fd())
		probe.Terminal = term.IsTerminal(fd)
		if probe.Terminal && report.Size == nil {
			if w, h, err := term.GetSize(fd); err != nil {
				probe.Error = err.Error()
			} else {
				report.Size = &ttySize{From: probe.Name, Width: w, Height: h}
			}
		}
		report.Probes = append(report.Probes, probe)
	}
	return report
}
