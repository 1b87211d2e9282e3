// Package view carries named render variables for a single dispatch and
// provides string escaping for safe output. Template execution itself is
// out of scope; controllers set variables here and whatever renders the
// response reads them back.
package view

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	strictOnce   sync.Once
)

// strict returns the shared strip-all-HTML policy.
func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// View holds the render variables of one dispatch. A View is created fresh
// per request and is not safe for concurrent use.
type View struct {
	vars   map[string]any
	policy *bluemonday.Policy
}

// Option configures a View.
type Option func(*View)

// WithPolicy sets a custom bluemonday policy for Sanitize.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(v *View) {
		if p != nil {
			v.policy = p
		}
	}
}

// New creates an empty View. Without options, Sanitize strips all HTML.
func New(opts ...Option) *View {
	v := &View{vars: make(map[string]any)}
	for _, opt := range opts {
		opt(v)
	}
	if v.policy == nil {
		v.policy = strict()
	}
	return v
}

// Set stores a named render variable, replacing any previous value.
func (v *View) Set(name string, value any) {
	v.vars[name] = value
}

// Get returns the named render variable, or nil if unset.
func (v *View) Get(name string) any {
	return v.vars[name]
}

// Vars returns a copy of all render variables.
func (v *View) Vars() map[string]any {
	out := make(map[string]any, len(v.vars))
	for k, val := range v.vars {
		out[k] = val
	}
	return out
}

// Escape HTML-escapes s for safe inclusion in markup.
func (v *View) Escape(s string) string {
	return html.EscapeString(s)
}

// Sanitize runs s through the configured bluemonday policy.
func (v *View) Sanitize(s string) string {
	return v.policy.Sanitize(s)
}
