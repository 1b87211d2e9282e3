package anvil

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/anvilworks/anvil/internal"
	"github.com/anvilworks/anvil/pkg/logger"
	"github.com/anvilworks/anvil/pkg/view"
)

// Type aliases - public API
type (
	// App orchestrates dispatch: routing, action invocation, and
	// lifecycle events.
	App = internal.App

	// Controller is the unit the dispatcher invokes by name. It declares
	// custom routes and the set of invocable actions.
	Controller = internal.Controller

	// ControllerFactory constructs a controller instance per dispatch.
	ControllerFactory = internal.ControllerFactory

	// ActionFunc is the signature for controller actions.
	ActionFunc = internal.ActionFunc

	// Context is the per-dispatch state handed to actions.
	Context = internal.Context

	// Args is the argument set forwarded to a resolved action.
	Args = internal.Args

	// Route maps a path pattern to a target action name.
	Route = internal.Route

	// RouteTable is an ordered set of routes; first match wins.
	RouteTable = internal.RouteTable

	// CompiledRoute is the pre-parsed matcher for one route pattern.
	CompiledRoute = internal.CompiledRoute

	// Listener handles named lifecycle events.
	Listener = internal.Listener

	// ListenerFactory constructs a fresh listener per trigger.
	ListenerFactory = internal.ListenerFactory

	// ListenerRegistry maps listener identifiers to handled events.
	ListenerRegistry = internal.ListenerRegistry

	// Config is the string-keyed application configuration.
	Config = internal.Config

	// PanicError is the structured form of a panic raised during dispatch.
	PanicError = internal.PanicError

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// View carries named render variables and escaping for one dispatch.
	View = view.View

	// ViewOption configures the per-dispatch render context.
	ViewOption = view.Option

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// Canonical controller, action, and event names.
const (
	DefaultController  = internal.DefaultController
	DefaultAction      = internal.DefaultAction
	NotFoundController = internal.NotFoundController
	NotFoundAction     = internal.NotFoundAction

	EventActionBefore = internal.EventActionBefore
	EventActionAfter  = internal.EventActionAfter

	// ParamMarker prefixes a capturing segment in a route pattern.
	ParamMarker = internal.ParamMarker
)

// ErrUnknownController reports a controller name with no registered
// factory; fatal for the request.
var ErrUnknownController = internal.ErrUnknownController

// New creates a new application with the given options. The App is
// immutable after creation apart from listener re-discovery.
//
// Example:
//
//	app := anvil.New(
//	    anvil.WithController("blog", controllers.NewBlog),
//	    anvil.WithListener("audit", listeners.NewAudit),
//	    anvil.WithLogger("web", anvil.RequestIDExtractor()),
//	)
//
//	err := app.Run(":8080")
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithController registers a controller factory under the given name.
func WithController(name string, factory ControllerFactory) Option {
	return internal.WithController(name, factory)
}

// WithListener registers a listener factory under a unique identifier.
// Identifiers determine trigger order (sorted ascending).
func WithListener(name string, factory ListenerFactory) Option {
	return internal.WithListener(name, factory)
}

// WithListenerFS restricts listener discovery to identifiers whose
// "<identifier>.go" source unit exists under dir in fsys.
func WithListenerFS(fsys fs.FS, dir string) Option {
	return internal.WithListenerFS(fsys, dir)
}

// WithConfig sets a single configuration value.
func WithConfig(key string, value any) Option {
	return internal.WithConfig(key, value)
}

// WithConfigYAML bulk-loads configuration from a YAML document.
func WithConfigYAML(r io.Reader) Option {
	return internal.WithConfigYAML(r)
}

// WithLogger creates a logger with a component name and optional
// extractors. The component name is added to every log entry.
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithViewOptions configures the per-dispatch render context.
func WithViewOptions(opts ...ViewOption) Option {
	return internal.WithViewOptions(opts...)
}

// Run options

// Logger sets the runtime logger. Defaults to the application logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers a cleanup function to run during shutdown.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Path and route helpers

// ParsePath extracts the ordered path segments from a raw request target.
func ParsePath(raw string) []string {
	return internal.ParsePath(raw)
}

// RequestTarget resolves the raw-target source: flag value wins over the
// query value, else empty.
func RequestTarget(flagValue, queryValue string) string {
	return internal.RequestTarget(flagValue, queryValue)
}

// RootPath derives the client-visible base path used for building links.
func RootPath(requestURI, target string) string {
	return internal.RootPath(requestURI, target)
}

// CompileRoute pre-parses a route pattern into a positional matcher.
func CompileRoute(pattern string) CompiledRoute {
	return internal.CompileRoute(pattern)
}

// Logging helpers

// RequestIDExtractor adds the per-request dispatch id to log entries
// carrying the request context.
func RequestIDExtractor() ContextExtractor {
	return internal.RequestIDExtractor()
}

// AsPanicError extracts a PanicError from err, if present.
func AsPanicError(err error) (*PanicError, bool) {
	return internal.AsPanicError(err)
}
