package view_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/anvilworks/anvil/pkg/view"
)

func TestVars(t *testing.T) {
	t.Parallel()

	v := view.New()
	assert.Nil(t, v.Get("title"))

	v.Set("title", "Home")
	v.Set("count", 3)
	assert.Equal(t, "Home", v.Get("title"))

	vars := v.Vars()
	assert.Equal(t, map[string]any{"title": "Home", "count": 3}, vars)

	// Vars returns a copy.
	vars["title"] = "mutated"
	assert.Equal(t, "Home", v.Get("title"))
}

func TestEscape(t *testing.T) {
	t.Parallel()

	v := view.New()
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", v.Escape("<b>hi</b>"))
	assert.Equal(t, "plain", v.Escape("plain"))
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("default policy strips all HTML", func(t *testing.T) {
		t.Parallel()

		v := view.New()
		assert.Equal(t, "hi", v.Sanitize("<script>x()</script><b>hi</b>"))
	})

	t.Run("custom policy", func(t *testing.T) {
		t.Parallel()

		p := bluemonday.NewPolicy()
		p.AllowElements("b")

		v := view.New(view.WithPolicy(p))
		assert.Equal(t, "<b>hi</b>", v.Sanitize("<i><b>hi</b></i>"))
	})
}
