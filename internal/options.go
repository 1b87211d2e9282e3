package internal

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/anvilworks/anvil/pkg/logger"
	"github.com/anvilworks/anvil/pkg/view"
)

// Option configures the application.
type Option func(*App)

// WithController registers a controller factory under the given name.
// The name is matched against the first request path segment. Registering
// the same name twice keeps the last factory.
//
// Example:
//
//	anvil.New(
//	    anvil.WithController("blog", controllers.NewBlog),
//	    anvil.WithController("index", controllers.NewHome),
//	)
func WithController(name string, factory ControllerFactory) Option {
	return func(a *App) {
		if name != "" && factory != nil {
			a.controllers[name] = factory
		}
	}
}

// WithListener registers a listener factory under a unique identifier.
// Identifiers determine trigger order (sorted ascending).
func WithListener(name string, factory ListenerFactory) Option {
	return func(a *App) {
		if name != "" && factory != nil {
			a.listenerFactories[name] = factory
		}
	}
}

// WithListenerFS restricts discovery to listeners whose "<identifier>.go"
// source unit exists under dir in fsys. A missing directory yields an
// empty registry; unrelated entries are skipped.
//
// Example:
//
//	//go:embed listeners
//	var listenerFS embed.FS
//
//	anvil.New(
//	    anvil.WithListener("audit", listeners.NewAudit),
//	    anvil.WithListenerFS(listenerFS, "listeners"),
//	)
func WithListenerFS(fsys fs.FS, dir string) Option {
	return func(a *App) {
		a.listenerFS = fsys
		a.listenerDir = dir
	}
}

// WithConfig sets a single configuration value.
func WithConfig(key string, value any) Option {
	return func(a *App) {
		a.config.Set(key, value)
	}
}

// WithConfigYAML bulk-loads configuration from a YAML document.
// Panics on malformed input since it runs during setup.
func WithConfigYAML(r io.Reader) Option {
	return func(a *App) {
		if err := a.config.LoadYAML(r); err != nil {
			panic(fmt.Sprintf("anvil: %v", err))
		}
	}
}

// WithLogger creates a JSON logger with a component name and optional
// context extractors. The component name is added to every log entry.
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithViewOptions configures the per-dispatch render context, e.g. a
// custom sanitize policy.
func WithViewOptions(opts ...view.Option) Option {
	return func(a *App) {
		a.viewOpts = append(a.viewOpts, opts...)
	}
}
