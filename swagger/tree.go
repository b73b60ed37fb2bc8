package swagger

// Node is a router in a route tree. Layers are reported in registration
// order.
type Node interface {
	Layers() []Layer
}

// Layer is one entry of a router: either a mounted sub-router or a leaf
// route. Exactly one of Router and Route is set.
type Layer struct {
	// Prefix is the pattern the sub-router is mounted under. It is empty
	// for routers mounted without a path.
	Prefix string
	Router Node

	Route *Route
}

// Route is a leaf of the route tree.
type Route struct {
	// Path is the route's own pattern, relative to its router.
	Path string

	// Methods lists the HTTP methods served by the route.
	Methods []string

	// Record is the attached documentation. Routes without a record are
	// left out of generated documents.
	Record *Record
}

// Tree is an in-memory route tree, used to describe routers that are not
// gorilla/mux routers or to snapshot one that is.
type Tree struct {
	layers []Layer
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Mount attaches a sub-router under prefix. An empty prefix mounts the
// sub-router at the parent's root.
func (t *Tree) Mount(prefix string, sub Node) *Tree {
	if sub != nil {
		t.layers = append(t.layers, Layer{Prefix: prefix, Router: sub})
	}
	return t
}

// Handle adds a leaf route for the given methods. A nil record adds an
// undocumented route.
func (t *Tree) Handle(path string, rec *Record, methods ...string) *Tree {
	t.layers = append(t.layers, Layer{Route: &Route{Path: path, Methods: methods, Record: rec}})
	return t
}

// Layers implements Node.
func (t *Tree) Layers() []Layer {
	out := make([]Layer, len(t.layers))
	copy(out, t.layers)
	return out
}
