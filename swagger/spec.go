package swagger

import (
	"sync"

	"github.com/gorilla/mux"
	"github.com/vitalvas/swagdoc/schema"
)

// Spec collects route documentation for a gorilla/mux router and builds
// Swagger 2.0 documents from it.
type Spec struct {
	opts Options
	reg  *schema.Registry

	mu         sync.RWMutex
	operations map[string]*OperationBuilder     // keyed by route name (Op)
	routeOps   map[*mux.Route]*OperationBuilder // keyed by route pointer (Route)
}

// NewSpec creates a spec builder with the given document metadata. DTOs
// are resolved against schema.Default unless WithRegistry is used.
func NewSpec(opts Options) *Spec {
	return &Spec{
		opts:       opts,
		reg:        schema.Default,
		operations: make(map[string]*OperationBuilder),
		routeOps:   make(map[*mux.Route]*OperationBuilder),
	}
}

// WithRegistry sets the registry DTOs are resolved against.
func (s *Spec) WithRegistry(reg *schema.Registry) *Spec {
	if reg != nil {
		s.reg = reg
	}
	return s
}

// Options returns the document metadata.
func (s *Spec) Options() Options {
	return s.opts
}

// Route attaches documentation to an existing mux route. The route can be
// configured with any mux features (Methods, Headers, Queries, etc.).
func (s *Spec) Route(route *mux.Route) *OperationBuilder {
	b := NewOperation()

	s.mu.Lock()
	s.routeOps[route] = b
	s.mu.Unlock()

	return b
}

// Op returns the builder for the named route, creating it when the name
// was not seen before. Routes documented through Route take precedence.
func (s *Spec) Op(routeName string) *OperationBuilder {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.operations[routeName]; ok {
		return b
	}
	b := NewOperation()
	s.operations[routeName] = b
	return b
}

// Record returns the documentation attached to route, or nil. When the
// record has no operation ID the route name is used.
func (s *Spec) Record(route *mux.Route) *Record {
	s.mu.RLock()
	b, ok := s.routeOps[route]
	if !ok {
		if name := route.GetName(); name != "" {
			b, ok = s.operations[name]
		}
	}
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	rec := b.Record()
	if rec.OperationID == "" && route.GetName() != "" {
		withID := *rec
		withID.OperationID = route.GetName()
		return &withID
	}
	return rec
}

// Tree snapshots the router into a route tree carrying this spec's
// records.
func (s *Spec) Tree(r *mux.Router) *Tree {
	return MuxTree(r, s.Record)
}

// Build walks the router and assembles a complete document.
func (s *Spec) Build(r *mux.Router) *Document {
	return Generate(s.reg, s.opts, s.Tree(r))
}
