package swagger

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/swagdoc/schema"
)

func TestSpec(t *testing.T) {
	t.Run("route documentation", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{Info: &Info{Title: "Test API", Version: "1.0.0"}}).
			WithRegistry(newTestRegistry())

		spec.Route(r.HandleFunc("/get/{id}", dummyHandler).Methods(http.MethodGet)).
			Tags("records").
			Parameter(InPath, A{}).
			Response(http.StatusOK, B{}, "found")
		r.HandleFunc("/health", dummyHandler).Methods(http.MethodGet)

		doc := spec.Build(r)

		assert.Equal(t, "Test API", doc.Info.Title)
		require.Len(t, doc.Paths, 1)
		op := doc.Paths["/get/{id}"]["get"]
		require.NotNil(t, op)
		assert.Equal(t, []string{"records"}, op.Tags)
		assert.JSONEq(t, `[{"name":"id","in":"path","type":"string"}]`, marshal(t, op.Parameters))
		assert.Equal(t, "#/definitions/B", op.Responses["200"].Schema.Ref)
	})

	t.Run("route name becomes operation id", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{}).WithRegistry(newTestRegistry())

		spec.Route(r.HandleFunc("/items", dummyHandler).Methods(http.MethodGet).Name("listItems"))
		spec.Route(r.HandleFunc("/items", dummyHandler).Methods(http.MethodPost).Name("createItem")).
			OperationID("addItem")

		doc := spec.Build(r)

		assert.Equal(t, "listItems", doc.Paths["/items"]["get"].OperationID)
		assert.Equal(t, "addItem", doc.Paths["/items"]["post"].OperationID)
	})

	t.Run("named route documentation", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{}).WithRegistry(newTestRegistry())

		r.HandleFunc("/users", dummyHandler).Methods(http.MethodGet).Name("listUsers")
		spec.Op("listUsers").Summary("List users")

		doc := spec.Build(r)

		op := doc.Paths["/users"]["get"]
		require.NotNil(t, op)
		assert.Equal(t, "List users", op.Summary)
		assert.Equal(t, "listUsers", op.OperationID)
	})

	t.Run("op returns the same builder", func(t *testing.T) {
		spec := NewSpec(Options{})
		assert.Same(t, spec.Op("x"), spec.Op("x"))
	})

	t.Run("route takes precedence over name", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{}).WithRegistry(newTestRegistry())

		route := r.HandleFunc("/users", dummyHandler).Methods(http.MethodGet).Name("listUsers")
		spec.Op("listUsers").Summary("by name")
		spec.Route(route).Summary("by route")

		assert.Equal(t, "by route", spec.Record(route).Summary)
	})

	t.Run("record does not modify the builder", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{})

		route := r.HandleFunc("/users", dummyHandler).Name("listUsers")
		b := spec.Route(route)

		assert.Equal(t, "listUsers", spec.Record(route).OperationID)
		assert.Empty(t, b.Record().OperationID)
	})

	t.Run("undocumented route has no record", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{})

		assert.Nil(t, spec.Record(r.HandleFunc("/x", dummyHandler)))
	})

	t.Run("subrouter routes", func(t *testing.T) {
		r := mux.NewRouter()
		spec := NewSpec(Options{}).WithRegistry(newTestRegistry())

		api := r.PathPrefix("/api").Subrouter()
		spec.Route(api.HandleFunc("/deep/info", dummyHandler).Methods(http.MethodGet)).
			Response(http.StatusOK, Sub{}, "ok")

		doc := spec.Build(r)

		require.Contains(t, doc.Paths, "/api/deep/info")
		assert.Equal(t, []string{"type", "code", "message"}, doc.Definitions["Sub"].Properties.Keys())
	})

	t.Run("default registry", func(t *testing.T) {
		spec := NewSpec(Options{}).WithRegistry(nil)
		assert.Same(t, schema.Default, spec.reg)
	})

	t.Run("options", func(t *testing.T) {
		spec := NewSpec(Options{Host: "example.com"})
		assert.Equal(t, "example.com", spec.Options().Host)
	})
}
