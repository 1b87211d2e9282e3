package internal_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvilworks/anvil/internal"
)

func newTestServer(t *testing.T) (*internal.App, *httptest.Server) {
	t.Helper()

	app := internal.New(
		internal.WithController("index", controllerFactory(&stubController{
			actions: []string{"index"},
		})),
		internal.WithController("blog", controllerFactory(&stubController{
			routes: internal.RouteTable{
				{Pattern: "post/:id", Action: "show"},
			},
			actions: []string{"index", "show"},
		})),
	)

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)
	return app, srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("healthz", func(t *testing.T) {
		t.Parallel()

		_, srv := newTestServer(t)
		resp, body := get(t, srv.URL+"/healthz")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", body)
	})

	t.Run("empty target dispatches index controller", func(t *testing.T) {
		t.Parallel()

		_, srv := newTestServer(t)
		resp, body := get(t, srv.URL+"/")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "index ran\n", body)
	})

	t.Run("q query value selects the target", func(t *testing.T) {
		t.Parallel()

		_, srv := newTestServer(t)
		resp, body := get(t, srv.URL+"/?q=blog/post/7")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "show ran\n", body)
	})

	t.Run("public prefix in q is stripped", func(t *testing.T) {
		t.Parallel()

		_, srv := newTestServer(t)
		resp, body := get(t, srv.URL+"/?q=/public/blog/")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "index ran\n", body)
	})

	t.Run("unknown controller maps to 404", func(t *testing.T) {
		t.Parallel()

		_, srv := newTestServer(t)
		resp, _ := get(t, srv.URL+"/?q=nothere")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unresolvable action renders the fallback controller", func(t *testing.T) {
		t.Parallel()

		_, srv := newTestServer(t)
		resp, body := get(t, srv.URL+"/?q=blog/42")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "404 page not found\n", body)
	})

	t.Run("request id header is set", func(t *testing.T) {
		t.Parallel()

		_, srv := newTestServer(t)
		resp, _ := get(t, srv.URL+"/")
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})
}
