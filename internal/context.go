package internal

import (
	"io"
	"log/slog"

	"github.com/anvilworks/anvil/pkg/view"
)

// Context is the per-dispatch state handed to controller actions: the
// resolved argument set, a fresh render-variable View, the application
// config and logger, and the response output sink. A Context lives for
// exactly one dispatch and is not safe for concurrent use.
type Context struct {
	app  *App
	view *view.View
	args Args
	out  io.Writer
}

func newContext(app *App, args Args, out io.Writer) *Context {
	if out == nil {
		out = io.Discard
	}
	return &Context{
		app:  app,
		view: view.New(app.viewOpts...),
		args: args,
		out:  out,
	}
}

// Args returns the full resolved argument set.
func (c *Context) Args() Args {
	return c.args
}

// Arg returns the i-th positional argument, or "" if out of range.
func (c *Context) Arg(i int) string {
	if i < 0 || i >= len(c.args.Positional) {
		return ""
	}
	return c.args.Positional[i]
}

// Param returns the named argument bound by a matched custom route,
// or "" if absent.
func (c *Context) Param(name string) string {
	return c.args.Named[name]
}

// View returns the render context for this dispatch.
func (c *Context) View() *view.View {
	return c.view
}

// Config returns the application configuration.
func (c *Context) Config() *Config {
	return c.app.Config()
}

// Logger returns the application logger.
func (c *Context) Logger() *slog.Logger {
	return c.app.Logger()
}

// App returns the owning application.
func (c *Context) App() *App {
	return c.app
}

// Write writes raw bytes to the response sink.
func (c *Context) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// String writes s to the response sink.
func (c *Context) String(s string) error {
	_, err := io.WriteString(c.out, s)
	return err
}
