package internal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvilworks/anvil/internal"
)

func TestCompiledRouteMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		segments []string
		expected map[string]string
		ok       bool
	}{
		{
			name:     "single parameter binds",
			pattern:  "user/:id/edit",
			segments: []string{"user", "42", "edit"},
			expected: map[string]string{"id": "42"},
			ok:       true,
		},
		{
			name:     "too few segments",
			pattern:  "user/:id/edit",
			segments: []string{"user", "42"},
			ok:       false,
		},
		{
			name:     "too many segments",
			pattern:  "user/:id/edit",
			segments: []string{"user", "abc", "edit", "extra"},
			ok:       false,
		},
		{
			name:     "literal mismatch",
			pattern:  "user/:id/edit",
			segments: []string{"account", "42", "edit"},
			ok:       false,
		},
		{
			name:     "literals are case-sensitive",
			pattern:  "user/list",
			segments: []string{"User", "list"},
			ok:       false,
		},
		{
			name:     "all literals match with empty bindings",
			pattern:  "user/list",
			segments: []string{"user", "list"},
			expected: map[string]string{},
			ok:       true,
		},
		{
			name:     "multiple parameters",
			pattern:  "post/:year/:slug",
			segments: []string{"post", "2026", "hello-world"},
			expected: map[string]string{"year": "2026", "slug": "hello-world"},
			ok:       true,
		},
		{
			name:     "empty pattern matches empty path",
			pattern:  "",
			segments: nil,
			expected: map[string]string{},
			ok:       true,
		},
		{
			name:     "bare marker is a literal",
			pattern:  "user/:",
			segments: []string{"user", ":"},
			expected: map[string]string{},
			ok:       true,
		},
		{
			name:     "surrounding slashes in pattern ignored",
			pattern:  "/user/:id/",
			segments: []string{"user", "7"},
			expected: map[string]string{"id": "7"},
			ok:       true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params, ok := internal.CompileRoute(tt.pattern).Match(tt.segments)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, params)
				assert.Equal(t, tt.expected, params)
			}
		})
	}
}

// Substituting arbitrary non-empty values for a pattern's parameter
// markers and matching against the result must always succeed and return
// exactly those values.
func TestCompiledRouteRoundTrip(t *testing.T) {
	t.Parallel()

	patterns := []string{
		"user/:id",
		"user/:id/edit",
		"post/:year/:month/:slug",
		"static/path/only",
		":a/:b/:c",
	}
	substitutions := []string{"42", "x", "hello-world", "UPPER", "0"}

	for _, pattern := range patterns {
		for _, val := range substitutions {
			parts := strings.Split(pattern, "/")
			want := make(map[string]string)
			segments := make([]string, len(parts))
			for i, p := range parts {
				if strings.HasPrefix(p, ":") && len(p) > 1 {
					want[p[1:]] = val
					segments[i] = val
				} else {
					segments[i] = p
				}
			}

			params, ok := internal.CompileRoute(pattern).Match(segments)
			require.True(t, ok, "pattern %q with %q", pattern, val)
			assert.Equal(t, want, params, "pattern %q with %q", pattern, val)
		}
	}
}

func TestCompiledRoutePattern(t *testing.T) {
	t.Parallel()

	r := internal.CompileRoute("user/:id")
	assert.Equal(t, "user/:id", r.Pattern())
}
