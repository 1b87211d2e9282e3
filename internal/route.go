package internal

import "strings"

// ParamMarker prefixes a pattern segment that captures a value under the
// marker-stripped name, e.g. "user/:id/edit".
const ParamMarker = ':'

// Route maps a declarative path pattern to a target action name.
type Route struct {
	Pattern string
	Action  string
}

// RouteTable is the ordered set of custom routes a controller declares.
// Iteration order is declaration order; the first matching pattern wins,
// so more specific routes must be declared before more general ones. The
// matcher does no specificity ranking.
type RouteTable []Route

type routeSegment struct {
	text  string
	param bool
}

// CompiledRoute is the pre-parsed form of a route pattern: an ordered list
// of literal and parameter segment descriptors. Matching is positional,
// so special characters in literal segments carry no meaning.
type CompiledRoute struct {
	pattern  string
	segments []routeSegment
}

// CompileRoute splits pattern on "/" and classifies each segment as a
// parameter (leading ParamMarker) or a literal.
func CompileRoute(pattern string) CompiledRoute {
	trimmed := strings.Trim(pattern, "/")
	if trimmed == "" {
		return CompiledRoute{pattern: pattern}
	}

	parts := strings.Split(trimmed, "/")
	segments := make([]routeSegment, 0, len(parts))
	for _, p := range parts {
		if len(p) > 1 && p[0] == ParamMarker {
			segments = append(segments, routeSegment{text: p[1:], param: true})
		} else {
			segments = append(segments, routeSegment{text: p})
		}
	}
	return CompiledRoute{pattern: pattern, segments: segments}
}

// Pattern returns the pattern the route was compiled from.
func (r CompiledRoute) Pattern() string {
	return r.pattern
}

// Match tests the compiled route against the full remaining request path.
// The rule is anchored at both ends: the segment count must equal the
// pattern's segment count, literals must match exactly (case-sensitive)
// and each parameter captures a single non-empty segment. On success it
// returns the name→value bindings (empty, non-nil map when the pattern has
// no parameters); on failure it returns ok == false, never an error.
func (r CompiledRoute) Match(segments []string) (map[string]string, bool) {
	if len(segments) != len(r.segments) {
		return nil, false
	}

	params := make(map[string]string)
	for i, seg := range r.segments {
		switch {
		case seg.param:
			if segments[i] == "" {
				return nil, false
			}
			params[seg.text] = segments[i]
		case seg.text != segments[i]:
			return nil, false
		}
	}
	return params, true
}
