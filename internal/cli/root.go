// Package cli defines the devmenu command line: the interactive simulator as
// the root command plus scripting commands that read and write stored
// settings without the display.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/atomicstack/devmenu/internal/app"
	"github.com/atomicstack/devmenu/internal/config"
	"github.com/atomicstack/devmenu/internal/logging"
)

// Build metadata, set with -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// StartHook observes the resolved configuration before a command runs.
type StartHook func(config.Config)

// New returns the root command.
func New(onStart StartHook) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "devmenu",
		Short:         "Simulate the device settings menu on a terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args, onStart)
			if err != nil {
				return err
			}
			return app.Run(cfg.App)
		},
	}
	config.BindFlags(cmd.PersistentFlags())

	addTree(cmd, onStart)
	addGet(cmd, onStart)
	addSet(cmd, onStart)
	addSlots(cmd, onStart)
	addVersion(cmd)
	return cmd
}

// setup resolves and validates the configuration and applies its logging
// settings.
func setup(cmd *cobra.Command, args []string, onStart StartHook) (config.Config, error) {
	cfg, err := config.Resolve(cmd.Flags(), args)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	if onStart != nil {
		onStart(cfg)
	}
	return cfg, nil
}

// openSession opens the configured storage and loads the stored settings
// into a fresh device.
func openSession(cmd *cobra.Command, args []string, onStart StartHook) (*app.Session, config.Config, error) {
	cfg, err := setup(cmd, args, onStart)
	if err != nil {
		return nil, cfg, err
	}
	s, err := app.Open(cfg.App, time.Now())
	if err != nil {
		return nil, cfg, err
	}
	if err := s.Load(cfg.App); err != nil {
		s.Close()
		return nil, cfg, fmt.Errorf("load settings: %w", err)
	}
	return s, cfg, nil
}
