package swagger

import (
	"maps"
	"slices"
	"strconv"

	"github.com/gorilla/mux"
)

// RouteGroup applies shared documentation defaults to a logical group of
// routes. Every builder it hands out starts as a copy of the defaults; later
// calls on the builder extend or override them for that route only.
type RouteGroup struct {
	spec     *Spec
	defaults Record
}

// Group creates a RouteGroup registering its routes into s.
func (s *Spec) Group() *RouteGroup {
	return &RouteGroup{spec: s}
}

// Tags appends tags to the group defaults.
func (g *RouteGroup) Tags(tags ...string) *RouteGroup {
	g.defaults.Tags = append(g.defaults.Tags, tags...)
	return g
}

// Security appends security requirements to the group defaults.
func (g *RouteGroup) Security(reqs ...SecurityRequirement) *RouteGroup {
	g.defaults.Security = append(g.defaults.Security, reqs...)
	return g
}

// Deprecated marks every operation of the group as deprecated.
func (g *RouteGroup) Deprecated() *RouteGroup {
	g.defaults.Deprecated = true
	return g
}

// Response adds a shared response. A route-level response with the same
// status code replaces it.
func (g *RouteGroup) Response(statusCode int, dto any, description string) *RouteGroup {
	if g.defaults.Responses == nil {
		g.defaults.Responses = make(map[string]ResponseSpec)
	}
	g.defaults.Responses[strconv.Itoa(statusCode)] = ResponseSpec{DTO: dto, Description: description}
	return g
}

// Route documents a mux route starting from the group defaults.
func (g *RouteGroup) Route(route *mux.Route) *OperationBuilder {
	b := g.spec.Route(route)
	*b.rec = g.copyDefaults()
	return b
}

// Op documents a named route starting from the group defaults. When the
// name already has a builder, the defaults are merged under what it
// carries: default tags and security come first, and its own responses
// win over the shared ones.
func (g *RouteGroup) Op(routeName string) *OperationBuilder {
	b := g.spec.Op(routeName)
	g.mergeInto(b.rec)
	return b
}

func (g *RouteGroup) copyDefaults() Record {
	return Record{
		Tags:       slices.Clone(g.defaults.Tags),
		Security:   slices.Clone(g.defaults.Security),
		Deprecated: g.defaults.Deprecated,
		Responses:  maps.Clone(g.defaults.Responses),
	}
}

func (g *RouteGroup) mergeInto(rec *Record) {
	merged := g.copyDefaults()

	for _, tag := range rec.Tags {
		if !slices.Contains(merged.Tags, tag) {
			merged.Tags = append(merged.Tags, tag)
		}
	}
	merged.Security = append(merged.Security, rec.Security...)
	merged.Deprecated = merged.Deprecated || rec.Deprecated

	if len(rec.Responses) > 0 {
		if merged.Responses == nil {
			merged.Responses = make(map[string]ResponseSpec, len(rec.Responses))
		}
		maps.Copy(merged.Responses, rec.Responses)
	}

	rec.Tags = merged.Tags
	rec.Security = merged.Security
	rec.Deprecated = merged.Deprecated
	rec.Responses = merged.Responses
}
