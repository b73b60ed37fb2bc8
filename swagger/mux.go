package swagger

import (
	"slices"
	"strings"

	"github.com/gorilla/mux"
)

// MuxTree snapshots a gorilla/mux router into a Tree. Subrouters and
// routers mounted as route handlers become mounted sub-trees whose prefix
// is their own part of the path template. lookup returns the record
// attached to a route, or nil for undocumented routes. Routes without a
// path template are skipped.
func MuxTree(r *mux.Router, lookup func(*mux.Route) *Record) *Tree {
	type visit struct {
		route     *mux.Route
		ancestors []*mux.Route
	}

	var visits []visit
	mounts := make(map[*mux.Route]bool)

	_ = r.Walk(func(route *mux.Route, _ *mux.Router, ancestors []*mux.Route) error {
		if len(ancestors) > 0 {
			mounts[ancestors[len(ancestors)-1]] = true
		}
		visits = append(visits, visit{route: route, ancestors: slices.Clone(ancestors)})
		return nil
	})

	root := NewTree()
	nodes := make(map[*mux.Route]*Tree)

	for _, v := range visits {
		tpl, err := v.route.GetPathTemplate()
		if err != nil && !mounts[v.route] {
			continue
		}

		parentTree, own := root, ""
		if err != nil {
			// A mount without a path of its own sits at its parent's root.
			if n := len(v.ancestors); n > 0 {
				if t, ok := nodes[v.ancestors[n-1]]; ok {
					parentTree = t
				}
			}
		} else {
			parentTree, own = attachPoint(root, nodes, v.ancestors, tpl)
		}

		if mounts[v.route] {
			sub := NewTree()
			nodes[v.route] = sub
			parentTree.Mount(own, sub)
			continue
		}

		var rec *Record
		if lookup != nil {
			rec = lookup(v.route)
		}
		methods, _ := v.route.GetMethods()
		parentTree.Handle(own, rec, methods...)
	}

	return root
}

// attachPoint finds the innermost mounted ancestor whose path template
// is a segment prefix of tpl and returns its tree with the rest of tpl.
// Routers mounted as handlers see the full request path, so their routes
// may not sit under the mount prefix at all; those climb to an outer
// ancestor, or to the root.
func attachPoint(root *Tree, nodes map[*mux.Route]*Tree, ancestors []*mux.Route, tpl string) (*Tree, string) {
	for i := len(ancestors) - 1; i >= 0; i-- {
		t, ok := nodes[ancestors[i]]
		if !ok {
			continue
		}
		if rest, ok := trimTemplate(tpl, ancestors[i]); ok {
			return t, rest
		}
	}
	return root, tpl
}

// trimTemplate strips the path template of parent from tpl. It fails when
// the parent template is not a whole-segment prefix of tpl. A parent
// without a path template strips nothing.
func trimTemplate(tpl string, parent *mux.Route) (string, bool) {
	parentTpl, err := parent.GetPathTemplate()
	if err != nil {
		return tpl, true
	}
	parentTpl = strings.TrimRight(parentTpl, "/")
	switch {
	case parentTpl == "":
		return tpl, true
	case tpl == parentTpl:
		return "", true
	case strings.HasPrefix(tpl, parentTpl+"/"):
		return tpl[len(parentTpl):], true
	default:
		return "", false
	}
}
