package swagger

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteGroup(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{}).WithRegistry(newTestRegistry())

		g := spec.Group().
			Tags("records").
			Security(SecurityRequirement{"api_key": {}}).
			Response(http.StatusBadRequest, B{}, "bad request")

		g.Route(r.HandleFunc("/a", dummyHandler).Methods(http.MethodGet)).
			Tags("extra").
			Response(http.StatusOK, Sub{}, "ok")
		g.Route(r.HandleFunc("/b", dummyHandler).Methods(http.MethodGet)).
			Response(http.StatusBadRequest, Sub{}, "overridden")

		doc := spec.Build(r)

		a := doc.Paths["/a"]["get"]
		require.NotNil(t, a)
		assert.Equal(t, []string{"records", "extra"}, a.Tags)
		assert.Equal(t, []SecurityRequirement{{"api_key": {}}}, a.Security)
		assert.Equal(t, "#/definitions/B", a.Responses["400"].Schema.Ref)
		assert.Equal(t, "#/definitions/Sub", a.Responses["200"].Schema.Ref)

		b := doc.Paths["/b"]["get"]
		require.NotNil(t, b)
		assert.Equal(t, []string{"records"}, b.Tags)
		assert.Equal(t, "overridden", b.Responses["400"].Description)
	})

	t.Run("routes do not share defaults", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{})
		g := spec.Group().Tags("shared").Response(http.StatusOK, nil, "ok")

		first := g.Route(r.HandleFunc("/a", dummyHandler))
		first.Tags("only-a").Response(http.StatusOK, B{}, "changed")
		second := g.Route(r.HandleFunc("/b", dummyHandler))

		assert.Equal(t, []string{"shared"}, second.Record().Tags)
		assert.Equal(t, "ok", second.Record().Responses["200"].Description)
	})

	t.Run("deprecated group", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{})
		spec.Group().Deprecated().Op("old")
		r.HandleFunc("/old", dummyHandler).Methods(http.MethodGet).Name("old")

		doc := spec.Build(r)

		require.Contains(t, doc.Paths, "/old")
		assert.True(t, doc.Paths["/old"]["get"].Deprecated)
		assert.Equal(t, "old", doc.Paths["/old"]["get"].OperationID)
	})

	t.Run("named builder keeps its own documentation", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{}).WithRegistry(newTestRegistry())
		r.HandleFunc("/items", dummyHandler).Methods(http.MethodPost).Name("createItem")

		existing := spec.Op("createItem").
			Summary("create").
			Tags("items").
			Body(B{}, "payload").
			Response(http.StatusBadRequest, Sub{}, "invalid item")

		merged := spec.Group().
			Tags("records", "items").
			Response(http.StatusBadRequest, B{}, "bad request").
			Response(http.StatusUnauthorized, nil, "unauthorized").
			Op("createItem")

		assert.Same(t, existing, merged)

		rec := merged.Record()
		assert.Equal(t, "create", rec.Summary)
		assert.Equal(t, []string{"records", "items"}, rec.Tags)
		require.NotNil(t, rec.Parameter)
		assert.Equal(t, "invalid item", rec.Responses["400"].Description)
		assert.Equal(t, "unauthorized", rec.Responses["401"].Description)

		doc := spec.Build(r)
		op := doc.Paths["/items"]["post"]
		require.NotNil(t, op)
		assert.Equal(t, "#/definitions/Sub", op.Responses["400"].Schema.Ref)
		require.Len(t, op.Parameters, 1)
		assert.Equal(t, "#/definitions/B", op.Parameters[0].Schema.Ref)
	})
}
