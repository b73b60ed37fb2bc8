package swagger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func setupTestRouter() (*mux.Router, *Spec) {
	r := mux.NewRouter()
	spec := NewSpec(Options{Info: &Info{Title: "Test API", Version: "1.0.0"}}).
		WithRegistry(newTestRegistry())

	spec.Route(r.HandleFunc("/items", dummyHandler).Methods(http.MethodGet)).
		Summary("List items").
		Tags("items").
		Parameter(InQuery, Filter{}).
		Response(http.StatusOK, B{}, "ok")

	spec.Route(r.HandleFunc("/items/{id:[0-9]+}", dummyHandler).Methods(http.MethodGet)).
		Summary("Get item").
		Tags("items").
		Parameter(InPath, A{}).
		Response(http.StatusOK, Sub{}, "ok")

	return r, spec
}

func serveRequest(r *mux.Router, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHandle(t *testing.T) {
	t.Run("JSON document at /swagger/swagger.json", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/swagger", nil)

		w := serveRequest(r, http.MethodGet, "/swagger/swagger.json")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var doc Document
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "2.0", doc.Swagger)
		assert.Equal(t, "Test API", doc.Info.Title)
		assert.Contains(t, doc.Paths, "/items")
		assert.Contains(t, doc.Paths, "/items/{id}")
		assert.Len(t, doc.Paths, 2)
		require.Contains(t, doc.Definitions, "Sub")
		assert.Equal(t, []string{"type", "code", "message"}, doc.Definitions["Sub"].Properties.Keys())
	})

	t.Run("YAML document at /swagger/swagger.yaml", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/swagger", nil)

		w := serveRequest(r, http.MethodGet, "/swagger/swagger.yaml")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/x-yaml", w.Header().Get("Content-Type"))

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "2.0", doc["swagger"])
		assert.Contains(t, doc["paths"], "/items/{id}")
	})

	t.Run("docs UI at /swagger/", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/swagger", nil)

		w := serveRequest(r, http.MethodGet, "/swagger/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "swagger-ui")
		assert.Contains(t, w.Body.String(), `"/swagger/swagger.json"`)
		assert.Contains(t, w.Body.String(), "<title>Test API</title>")
	})

	t.Run("docs UI without trailing slash", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/swagger/", nil)

		w := serveRequest(r, http.MethodGet, "/swagger")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("root base path", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "", nil)

		assert.Equal(t, http.StatusOK, serveRequest(r, http.MethodGet, "/").Code)
		assert.Equal(t, http.StatusOK, serveRequest(r, http.MethodGet, "/swagger.json").Code)
	})

	t.Run("custom filenames", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/docs", &HandleConfig{
			JSONFilename: "/api/v1/swagger.json",
			YAMLFilename: "-",
		})

		assert.Equal(t, http.StatusOK, serveRequest(r, http.MethodGet, "/api/v1/swagger.json").Code)
		assert.Equal(t, http.StatusNotFound, serveRequest(r, http.MethodGet, "/docs/swagger.yaml").Code)

		w := serveRequest(r, http.MethodGet, "/docs/")
		assert.Contains(t, w.Body.String(), `"/api/v1/swagger.json"`)
	})

	t.Run("docs point at YAML when JSON disabled", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/docs", &HandleConfig{JSONFilename: "-"})

		w := serveRequest(r, http.MethodGet, "/docs/")
		assert.Contains(t, w.Body.String(), `"/docs/swagger.yaml"`)
	})

	t.Run("docs disabled", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/docs", &HandleConfig{DisableDocs: true})

		assert.Equal(t, http.StatusNotFound, serveRequest(r, http.MethodGet, "/docs/").Code)
		assert.Equal(t, http.StatusOK, serveRequest(r, http.MethodGet, "/docs/swagger.json").Code)
	})

	t.Run("alternative UIs", func(t *testing.T) {
		tests := []struct {
			name string
			ui   DocsUI
			want string
		}{
			{"rapidoc", DocsRapiDoc, "<rapi-doc"},
			{"redoc", DocsRedoc, "<redoc"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r, spec := setupTestRouter()
				spec.Handle(r, "/docs", &HandleConfig{UI: tt.ui, Title: "Custom <Title>"})

				w := serveRequest(r, http.MethodGet, "/docs/")
				assert.Contains(t, w.Body.String(), tt.want)
				assert.Contains(t, w.Body.String(), "Custom &lt;Title&gt;")
			})
		}
	})

	t.Run("swagger UI config", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/docs", &HandleConfig{
			SwaggerUIConfig: map[string]any{"docExpansion": "none", "deepLinking": true},
		})

		w := serveRequest(r, http.MethodGet, "/docs/")
		assert.Contains(t, w.Body.String(), `, deepLinking: true, docExpansion: "none"`)
	})

	t.Run("document built once", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/swagger", nil)

		first := serveRequest(r, http.MethodGet, "/swagger/swagger.json").Body.String()

		spec.Route(r.HandleFunc("/late", dummyHandler).Methods(http.MethodGet))

		second := serveRequest(r, http.MethodGet, "/swagger/swagger.json").Body.String()
		assert.Equal(t, first, second)
		assert.NotContains(t, second, "/late")
	})

	t.Run("documentation routes are not documented", func(t *testing.T) {
		r, spec := setupTestRouter()
		spec.Handle(r, "/swagger", nil)

		w := serveRequest(r, http.MethodGet, "/swagger/swagger.json")
		assert.NotContains(t, w.Body.String(), "/swagger/swagger.yaml")
	})
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		filename string
		want     string
	}{
		{"relative", "/swagger", "swagger.json", "/swagger/swagger.json"},
		{"relative nested", "/swagger", "v1/swagger.json", "/swagger/v1/swagger.json"},
		{"absolute", "/swagger", "/api/swagger.json", "/api/swagger.json"},
		{"root base", "", "swagger.json", "/swagger.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolvePath(tt.basePath, tt.filename))
		})
	}
}
