package swagger

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"gopkg.in/yaml.v3"
)

// DocsUI selects which interactive documentation UI to serve.
type DocsUI int

const (
	DocsSwaggerUI DocsUI = iota
	DocsRapiDoc
	DocsRedoc
)

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// UI selects the interactive docs UI (default: DocsSwaggerUI).
	UI DocsUI

	// Title overrides the HTML page title (default: info.title).
	Title string

	// JSONFilename is the path for the JSON document endpoint
	// (default: "swagger.json"). Set to "-" to disable.
	//
	// Relative paths are joined with the base path:
	//
	//	"swagger.json"     -> <basePath>/swagger.json
	//	"v1/swagger.json"  -> <basePath>/v1/swagger.json
	//
	// Absolute paths (starting with "/") are used as-is.
	JSONFilename string

	// YAMLFilename is the path for the YAML document endpoint
	// (default: "swagger.yaml"). Set to "-" to disable.
	YAMLFilename string

	// DisableDocs disables the interactive HTML docs UI endpoint.
	DisableDocs bool

	// SwaggerUIConfig provides additional SwaggerUIBundle options, rendered
	// as JavaScript object properties next to url and dom_id.
	//
	// See: https://swagger.io/docs/open-source-tools/swagger-ui/usage/configuration/
	SwaggerUIConfig map[string]any
}

func (cfg HandleConfig) jsonFilename() string {
	if cfg.JSONFilename == "" {
		return "swagger.json"
	}
	return cfg.JSONFilename
}

func (cfg HandleConfig) yamlFilename() string {
	if cfg.YAMLFilename == "" {
		return "swagger.yaml"
	}
	return cfg.YAMLFilename
}

// resolvePath returns the full route path for a filename.
func resolvePath(basePath, filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	if basePath == "" {
		return "/" + filename
	}
	return basePath + "/" + filename
}

// Handle registers documentation endpoints under basePath on the router:
//
//	<basePath>/            - interactive HTML docs (unless DisableDocs)
//	<JSONFilename path>    - document as JSON (unless JSONFilename is "-")
//	<YAMLFilename path>    - document as YAML (unless YAMLFilename is "-")
//
// Pass nil for the default config. The document is built once on first
// request and cached, so every documented route must be registered before
// the server starts.
func (s *Spec) Handle(r *mux.Router, basePath string, cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")

	build := s.cachedBuild(r)

	var jsonPath, yamlPath string

	if file := cfg.jsonFilename(); file != "-" {
		jsonPath = resolvePath(basePath, file)
		r.HandleFunc(jsonPath, documentHandler(build, "application/json", func(doc *Document) ([]byte, error) {
			return json.MarshalIndent(doc, "", "  ")
		}))
	}

	if file := cfg.yamlFilename(); file != "-" {
		yamlPath = resolvePath(basePath, file)
		r.HandleFunc(yamlPath, documentHandler(build, "application/x-yaml", func(doc *Document) ([]byte, error) {
			return yaml.Marshal(doc)
		}))
	}

	if cfg.DisableDocs {
		return
	}

	specURL := jsonPath
	if specURL == "" {
		specURL = yamlPath
	}
	if specURL == "" {
		return
	}
	s.registerDocs(r, basePath, cfg, specURL)
}

// cachedBuild returns a function building the document once. A panic
// while building is reported as an error on every call.
func (s *Spec) cachedBuild(r *mux.Router) func() (*Document, error) {
	var (
		once sync.Once
		doc  *Document
		err  error
	)
	return func() (*Document, error) {
		once.Do(func() {
			defer func() {
				if rv := recover(); rv != nil {
					err = fmt.Errorf("build document: %v", rv)
				}
			}()
			doc = s.Build(r)
		})
		return doc, err
	}
}

func documentHandler(build func() (*Document, error), contentType string, encode func(*Document) ([]byte, error)) http.HandlerFunc {
	var (
		once sync.Once
		data []byte
		err  error
	)
	return func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			var doc *Document
			if doc, err = build(); err != nil {
				return
			}
			data, err = encode(doc)
		})
		if err != nil {
			http.Error(w, "failed to serialize swagger document", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func (s *Spec) registerDocs(r *mux.Router, basePath string, cfg *HandleConfig, specURL string) {
	title := cfg.Title
	if title == "" && s.opts.Info != nil {
		title = s.opts.Info.Title
	}

	var buf bytes.Buffer
	err := docsPage.ExecuteTemplate(&buf, cfg.UI.templateName(), docsPageData{
		Title:   title,
		SpecURL: specURL,
		Config:  swaggerUIOptions(cfg.SwaggerUIConfig),
	})
	page := buf.Bytes()

	handler := func(w http.ResponseWriter, _ *http.Request) {
		if err != nil {
			http.Error(w, "failed to render docs page", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}

	if basePath == "" {
		r.HandleFunc("/", handler)
		return
	}
	r.HandleFunc(basePath, handler)
	r.HandleFunc(basePath+"/", handler)
}

func (ui DocsUI) templateName() string {
	switch ui {
	case DocsRapiDoc:
		return "rapidoc"
	case DocsRedoc:
		return "redoc"
	default:
		return "swagger-ui"
	}
}

type docsPageData struct {
	Title   string
	SpecURL string
	Config  template.JS
}

// swaggerUIOptions renders extra SwaggerUIBundle options as ", key: value"
// pairs in key order. Values that cannot be encoded are skipped.
func swaggerUIOptions(config map[string]any) template.JS {
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v, err := json.Marshal(config[k])
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, ", %s: %s", k, v)
	}
	return template.JS(b.String())
}

var docsPage = template.Must(template.New("docs").Parse(`
{{- define "head" -}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
{{- end}}

{{- define "swagger-ui" -}}
{{template "head" .}}
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui" data-url="{{.SpecURL}}"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: document.getElementById("swagger-ui").dataset.url, dom_id: "#swagger-ui"{{.Config}}});
</script>
</body>
</html>
{{- end}}

{{- define "rapidoc" -}}
{{template "head" .}}
<script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>
</head>
<body>
<rapi-doc spec-url="{{.SpecURL}}"></rapi-doc>
</body>
</html>
{{- end}}

{{- define "redoc" -}}
{{template "head" .}}
</head>
<body>
<redoc spec-url="{{.SpecURL}}"></redoc>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>
{{- end}}
`))
