package internal

import (
	"io/fs"
	"log/slog"
	"sync"

	"github.com/anvilworks/anvil/pkg/logger"
	"github.com/anvilworks/anvil/pkg/view"
)

// App owns the dispatch core: the controller and listener registries, the
// shared configuration, the event log, and the logger. Registries are
// immutable after New; the listener registry pointer may be swapped by an
// explicit re-discovery, guarded by the app mutex.
type App struct {
	mu sync.RWMutex

	config   *Config
	logger   *slog.Logger
	eventLog *EventLog

	controllers       map[string]ControllerFactory
	listenerFactories map[string]ListenerFactory
	listeners         *ListenerRegistry
	listenerFS        fs.FS
	listenerDir       string

	viewOpts []view.Option
}

// New creates an application with the given options. The built-in
// not-found controller is registered unless an option provided its own,
// and listener discovery runs once before New returns.
func New(opts ...Option) *App {
	a := &App{
		config:            NewConfig(),
		logger:            logger.NewNope(),
		eventLog:          &EventLog{},
		controllers:       make(map[string]ControllerFactory),
		listenerFactories: make(map[string]ListenerFactory),
	}

	for _, opt := range opts {
		opt(a)
	}

	if _, ok := a.controllers[NotFoundController]; !ok {
		a.controllers[NotFoundController] = newNotFound
	}

	a.DiscoverListeners()
	return a
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Events returns a copy of the event log for introspection.
func (a *App) Events() []string {
	return a.eventLog.Events()
}

// Listeners returns the current listener registry snapshot.
func (a *App) Listeners() *ListenerRegistry {
	return a.listenerRegistry()
}

// DiscoverListeners rebuilds the listener registry from the registered
// factories (filtered by the listener directory when one is configured)
// and swaps it in. Discovery on unchanged registrations is idempotent.
func (a *App) DiscoverListeners() *ListenerRegistry {
	reg := buildListenerRegistry(a.listenerFactories, a.listenerFS, a.listenerDir)
	a.mu.Lock()
	a.listeners = reg
	a.mu.Unlock()
	return reg
}

func (a *App) listenerRegistry() *ListenerRegistry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.listeners
}
