package swagger

import (
	"net/http"
	"path"
	"regexp"
	"strings"
)

// regexpPrefixRegexp extracts the literal part of a mount prefix given as
// regexp source, e.g. `^\/api\/?(?=\/|$)` -> "/api".
var regexpPrefixRegexp = regexp.MustCompile(`^\^\\?(.*?)\\/?\?\(\?=`)

// WalkResult is one documented route found by Walk.
type WalkResult struct {
	Path   string
	Method string
	Record *Record
}

// Walk traverses the route tree depth-first and returns every documented
// route with its full path in OpenAPI placeholder syntax and its
// lowercase method. A route serving several methods yields one result per
// method; a route without methods is reported as "get". Routes without a
// record are skipped. The tree is only read.
func Walk(root Node, base string) []WalkResult {
	var out []WalkResult
	walk(root, base, &out)
	return out
}

func walk(n Node, base string, out *[]WalkResult) {
	if n == nil {
		return
	}

	for _, layer := range n.Layers() {
		switch {
		case layer.Router != nil:
			walk(layer.Router, joinPath(base, literalPrefix(layer.Prefix)), out)

		case layer.Route != nil:
			route := layer.Route
			if route.Record == nil {
				continue
			}

			full := convertPath(joinPath(base, route.Path))

			methods := route.Methods
			if len(methods) == 0 {
				methods = []string{http.MethodGet}
			}
			for _, m := range methods {
				*out = append(*out, WalkResult{
					Path:   full,
					Method: strings.ToLower(m),
					Record: route.Record,
				})
			}
		}
	}
}

// literalPrefix returns the literal path a sub-router is mounted under.
// Template prefixes are returned as-is. Regexp sources (leading "^") are
// reduced to their literal part with capture-group segments dropped; a
// source of any other shape yields "".
func literalPrefix(prefix string) string {
	if !strings.HasPrefix(prefix, "^") {
		return prefix
	}

	m := regexpPrefixRegexp.FindStringSubmatch(prefix)
	if m == nil {
		return ""
	}

	literal := strings.ReplaceAll(m[1], `\`, "")

	segments := strings.Split(literal, "/")
	kept := segments[:0]
	for _, seg := range segments {
		if strings.ContainsAny(seg, "()") {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, "/")
}

// joinPath joins path elements with a single slash between them, without
// a trailing slash. The root path is "/".
func joinPath(elem ...string) string {
	return path.Join(append([]string{"/"}, elem...)...)
}

// convertPath rewrites router placeholders to OpenAPI syntax:
// ":id" and "{id:[0-9]+}" both become "{id}".
func convertPath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = convertSegment(seg)
	}
	return strings.Join(segments, "/")
}

func convertSegment(seg string) string {
	var b strings.Builder

	for i := 0; i < len(seg); i++ {
		switch seg[i] {
		case '{':
			end := matchingBrace(seg, i)
			if end < 0 {
				b.WriteString(seg[i:])
				return b.String()
			}
			name, _, _ := strings.Cut(seg[i+1:end], ":")
			b.WriteString("{" + name + "}")
			i = end

		case ':':
			j := i + 1
			for j < len(seg) && isParamChar(seg[j]) {
				j++
			}
			name := seg[i+1 : j]
			if name == "" {
				b.WriteByte(':')
				continue
			}
			// Skip an inline regexp, e.g. ":id(\\d+)", and an optional marker.
			if j < len(seg) && seg[j] == '(' {
				if end := matchingParen(seg, j); end >= 0 {
					j = end + 1
				}
			}
			if j < len(seg) && seg[j] == '?' {
				j++
			}
			b.WriteString("{" + name + "}")
			i = j - 1

		default:
			b.WriteByte(seg[i])
		}
	}

	return b.String()
}

func matchingBrace(s string, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func matchingParen(s string, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isParamChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
