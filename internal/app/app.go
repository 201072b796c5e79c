package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/devmenu/internal/backend"
	"github.com/atomicstack/devmenu/internal/controller"
	"github.com/atomicstack/devmenu/internal/lcd"
	"github.com/atomicstack/devmenu/internal/logging"
	"github.com/atomicstack/devmenu/internal/logging/events"
	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/state"
	"github.com/atomicstack/devmenu/internal/storage"
	"github.com/atomicstack/devmenu/internal/ui"
)

// Session is a device wired to its menu, display and storage.
type Session struct {
	Device     *state.Device
	Tree       *menu.Tree
	Display    *lcd.Display
	Controller *controller.Controller
	Store      storage.Backend
}

// Open builds the device and its menu on top of the configured storage. It
// does not load stored settings; Start or Load does.
func Open(cfg Config, now time.Time) (*Session, error) {
	store, err := storage.Open(cfg.Storage, cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	s := &Session{Device: state.NewDevice(now), Store: store}
	tree, err := menu.Build(s.Device.Menu(state.Hooks{Save: s.Save}))
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("build menu: %w", err)
	}
	layout := menu.DefaultLayout
	if cfg.Width > 0 {
		layout.Width = cfg.Width
	}
	s.Tree = tree
	s.Display = lcd.New(layout)
	s.Controller = controller.New(tree, s.Display,
		controller.WithBackend(store),
		controller.WithPolicy(cfg.Policy),
		controller.WithLoadOnStart(cfg.LoadOnStart),
		controller.WithStoreOnCommit(cfg.StoreOnCommit),
		controller.WithNotifyOnChange(cfg.NotifyOnChange),
		controller.WithWindowHeight(cfg.Rows),
	)
	return s, nil
}

// Load restores every stored setting without touching navigation.
func (s *Session) Load(cfg Config) error {
	return menu.LoadAll(s.Tree.First(), s.Store, cfg.Policy)
}

// Save stores every setting.
func (s *Session) Save() error {
	return s.Controller.StoreAll()
}

func (s *Session) Close() error {
	return s.Store.Close()
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	s, err := Open(cfg, time.Now())
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Controller.Start(); err != nil {
		logging.Error(fmt.Errorf("load settings: %w", err))
	}
	watcher := backend.NewWatcher(s.Device, cfg.Tick, cfg.Rates...)
	defer watcher.Stop()
	model := ui.NewModel(ui.Options{
		Controller: s.Controller,
		Display:    s.Display,
		Watcher:    watcher,
		Save:       s.Save,
		ShowFooter: cfg.ShowFooter,
		Blink:      cfg.Blink,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	reason := "quit"
	if model.Done() {
		reason = "menu"
	}
	events.App.Stop(reason)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
