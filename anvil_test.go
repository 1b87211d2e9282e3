package anvil_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvilworks/anvil"
)

// greeter is a minimal controller exercising the public API end to end.
type greeter struct {
	app *anvil.App
}

func newGreeter(app *anvil.App) anvil.Controller {
	return &greeter{app: app}
}

func (g *greeter) Routes() anvil.RouteTable {
	return anvil.RouteTable{
		{Pattern: "hello/:name", Action: "hello"},
	}
}

func (g *greeter) Actions() map[string]anvil.ActionFunc {
	return map[string]anvil.ActionFunc{
		"index": g.index,
		"hello": g.hello,
	}
}

func (g *greeter) index(c *anvil.Context) error {
	return c.String("greeter index\n")
}

func (g *greeter) hello(c *anvil.Context) error {
	c.View().Set("name", c.Param("name"))
	return c.String("hello " + c.View().Escape(c.Param("name")) + "\n")
}

// recorder listens to both lifecycle events.
type recorder struct {
	app  *anvil.App
	seen *[]string
}

func newRecorder(seen *[]string) anvil.ListenerFactory {
	return func() anvil.Listener {
		return &recorder{seen: seen}
	}
}

func (r *recorder) SetApp(app *anvil.App) { r.app = app }

func (r *recorder) Events() []string {
	return []string{anvil.EventActionBefore, anvil.EventActionAfter}
}

func (r *recorder) Handle(event string, payload ...any) error {
	*r.seen = append(*r.seen, event)
	return nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	app := anvil.New()
	require.NotNil(t, app)
}

func TestDispatchEndToEnd(t *testing.T) {
	t.Parallel()

	var seen []string
	app := anvil.New(
		anvil.WithController("greet", newGreeter),
		anvil.WithListener("recorder", newRecorder(&seen)),
		anvil.WithConfig("site.name", "test"),
	)

	var out bytes.Buffer
	require.NoError(t, app.Dispatch("greet/hello/world", &out))

	assert.Equal(t, "hello world\n", out.String())
	assert.Equal(t, []string{anvil.EventActionBefore, anvil.EventActionAfter}, seen)
	assert.Equal(t, []string{anvil.EventActionBefore, anvil.EventActionAfter}, app.Events())
}

func TestDispatchNotFound(t *testing.T) {
	t.Parallel()

	app := anvil.New(
		anvil.WithController("greet", newGreeter),
	)

	var out bytes.Buffer
	require.NoError(t, app.Dispatch("greet/missing", &out))
	assert.Equal(t, "404 page not found\n", out.String())
}

func TestDispatchUnknownController(t *testing.T) {
	t.Parallel()

	app := anvil.New()
	err := app.Dispatch("ghost", nil)
	require.ErrorIs(t, err, anvil.ErrUnknownController)
}

func TestConfigYAML(t *testing.T) {
	t.Parallel()

	app := anvil.New(
		anvil.WithConfigYAML(strings.NewReader("site.name: anvil\n")),
	)
	assert.Equal(t, "anvil", app.Config().GetString("site.name"))
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"blog", "42"}, anvil.ParsePath("/public/blog/42/"))
	assert.Equal(t, "flag", anvil.RequestTarget("flag", "query"))
	assert.Equal(t, "/app/", anvil.RootPath("/app/index.php?q=blog", "blog"))

	params, ok := anvil.CompileRoute("user/:id").Match([]string{"user", "9"})
	require.True(t, ok)
	assert.Equal(t, map[string]string{"id": "9"}, params)
}
