package internal

import "fmt"

// Canonical controller and action names.
const (
	// DefaultController handles requests whose path has no controller segment.
	DefaultController = "index"
	// DefaultAction runs when the path has no action segment.
	DefaultAction = "index"
	// NotFoundController is the fixed fallback for unresolvable actions.
	NotFoundController = "error404"
	// NotFoundAction is the action invoked on the fallback controller.
	NotFoundAction = "index"
)

// ActionFunc is a single invocable capability on a controller.
type ActionFunc func(c *Context) error

// Controller is the external collaborator the dispatcher invokes by name.
// Routes returns the controller's declared custom routes (possibly empty)
// and Actions the set of externally callable action names. Only names
// present in the Actions map are invocable; everything else resolves to
// the not-found fallback.
type Controller interface {
	Routes() RouteTable
	Actions() map[string]ActionFunc
}

// ControllerFactory constructs a controller instance for one dispatch.
// Factories are registered by name at startup, replacing runtime class
// lookup with an explicit registry.
type ControllerFactory func(app *App) Controller

// makeController instantiates the named controller. A name without a
// registered factory is fatal for the request.
func (a *App) makeController(name string) (Controller, error) {
	factory, ok := a.controllers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownController, name)
	}
	return factory(a), nil
}

// notFound is the built-in fallback controller. It is always registered,
// though an application may override it with its own error404 factory.
type notFound struct{}

func newNotFound(*App) Controller {
	return &notFound{}
}

func (n *notFound) Routes() RouteTable {
	return nil
}

func (n *notFound) Actions() map[string]ActionFunc {
	return map[string]ActionFunc{NotFoundAction: n.index}
}

func (n *notFound) index(c *Context) error {
	c.View().Set("title", "Not Found")
	return c.String("404 page not found\n")
}
