package internal

import "strings"

// basePathPrefix is stripped from the front of a raw request target when
// the document root differs from the application root.
const basePathPrefix = "public"

// ParsePath extracts the ordered, non-empty path segments from a raw
// request target. Surrounding slashes and a leading "public/" prefix are
// normalized away. A wholly empty input yields nil, never a single empty
// segment. ParsePath has no failure modes.
func ParsePath(raw string) []string {
	raw = strings.Trim(raw, "/")
	if raw == basePathPrefix {
		raw = ""
	} else if rest, ok := strings.CutPrefix(raw, basePathPrefix+"/"); ok {
		raw = strings.Trim(rest, "/")
	}
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}

// RequestTarget resolves which raw-target source wins: the command-line
// flag value if present, else the query-string value, else empty. The
// parser itself is agnostic to the source.
func RequestTarget(flagValue, queryValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return queryValue
}

// RootPath derives the client-visible base path used for building links.
// It strips a trailing "index.php", any query string, and finally the
// resolved request target suffix from the raw request URI.
func RootPath(requestURI, target string) string {
	path := requestURI
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "index.php")
	if t := strings.Trim(target, "/"); t != "" {
		path = strings.TrimSuffix(path, t+"/")
		path = strings.TrimSuffix(path, t)
	}
	return path
}
