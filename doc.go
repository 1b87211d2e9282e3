// Package anvil provides a minimal MVC front controller for Go
// applications: a request path is resolved to a named controller action,
// optionally rewritten through declarative route patterns with named
// parameters, invoked synchronously, and bracketed by actionBefore and
// actionAfter lifecycle events delivered to registered listeners.
//
// # Quick Start
//
// Create an application with anvil.New(), register controllers and
// listeners, and call Run() to start the HTTP front controller:
//
//	app := anvil.New(
//	    anvil.WithController("index", controllers.NewHome),
//	    anvil.WithController("blog", controllers.NewBlog),
//	    anvil.WithListener("audit", listeners.NewAudit),
//	    anvil.WithLogger("web", anvil.RequestIDExtractor()),
//	)
//
//	if err := app.Run(":8080"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Controllers
//
// Controllers implement the [Controller] interface: Routes() declares
// custom route patterns in precedence order and Actions() the set of
// invocable action names:
//
//	type BlogController struct {
//	    app *anvil.App
//	}
//
//	func NewBlog(app *anvil.App) anvil.Controller {
//	    return &BlogController{app: app}
//	}
//
//	func (b *BlogController) Routes() anvil.RouteTable {
//	    return anvil.RouteTable{
//	        {Pattern: "post/:id", Action: "show"},
//	        {Pattern: "post/:id/edit", Action: "edit"},
//	    }
//	}
//
//	func (b *BlogController) Actions() map[string]anvil.ActionFunc {
//	    return map[string]anvil.ActionFunc{
//	        "index": b.index,
//	        "show":  b.show,
//	        "edit":  b.edit,
//	    }
//	}
//
//	func (b *BlogController) show(c *anvil.Context) error {
//	    c.View().Set("post", c.Param("id"))
//	    return c.String("post " + c.Param("id"))
//	}
//
// Requests resolve by the default policy — first segment controller,
// second segment action, the rest positional arguments — unless a
// declared route pattern matches, in which case its named bindings
// replace the positional arguments. An action name the controller does
// not declare falls back to the built-in not-found controller.
//
// # Listeners
//
// Listeners receive named lifecycle events synchronously, in sorted
// identifier order. Each trigger freshly instantiates the listener and
// binds it to the application:
//
//	type Audit struct {
//	    app *anvil.App
//	}
//
//	func NewAudit() anvil.Listener { return &Audit{} }
//
//	func (a *Audit) SetApp(app *anvil.App) { a.app = app }
//
//	func (a *Audit) Events() []string {
//	    return []string{anvil.EventActionBefore, anvil.EventActionAfter}
//	}
//
//	func (a *Audit) Handle(event string, payload ...any) error {
//	    a.app.Logger().Info("lifecycle", "event", event)
//	    return nil
//	}
//
// # Request Targets
//
// The dispatcher accepts its target either from a command-line flag or
// from the "q" query value of an HTTP request; the flag wins when both
// are present. A leading "public/" prefix and surrounding slashes are
// normalized away before routing.
package anvil
