// Package petstore is a small pet store API documented with swagger. It
// backs the swagdoc demo server and the end-to-end tests.
package petstore

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/vitalvas/swagdoc/muxhandlers"
	"github.com/vitalvas/swagdoc/schema"
	"github.com/vitalvas/swagdoc/swagger"
)

// DocsPath is where the documentation endpoints are served.
const DocsPath = "/swagger"

// DefaultOptions returns the document metadata of the pet store API.
func DefaultOptions() swagger.Options {
	return swagger.Options{
		Info: &swagger.Info{
			Title:       "Swagger Petstore",
			Description: "This is a sample server Petstore server.",
			Version:     "1.0.0",
			Contact:     &swagger.Contact{Email: "apiteam@swagger.io"},
			License:     &swagger.License{Name: "Apache 2.0", URL: "https://www.apache.org/licenses/LICENSE-2.0.html"},
		},
		BasePath: "/",
		Consumes: []string{"application/json"},
		Produces: []string{"application/json"},
		Tags: []swagger.Tag{
			{Name: "pets", Description: "Everything about your pets"},
		},
		SecurityDefinitions: map[string]*swagger.SecurityScheme{
			"basic":   {Type: "basic"},
			"api_key": {Type: "apiKey", In: swagger.InHeader, Name: "token"},
		},
	}
}

// Config configures NewRouter.
type Config struct {
	// Options is the document metadata. Defaults to DefaultOptions().
	Options *swagger.Options

	// Registry receives the pet store DTOs. Defaults to a new registry.
	Registry *schema.Registry

	// Store defaults to an empty store.
	Store *Store

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewRouter returns the pet store router with every API route documented
// and the documentation served under DocsPath.
func NewRouter(cfg Config) (*mux.Router, *swagger.Spec) {
	opts := DefaultOptions()
	if cfg.Options != nil {
		opts = *cfg.Options
	}

	reg := cfg.Registry
	if reg == nil {
		reg = schema.NewRegistry()
	}
	Register(reg)

	store := cfg.Store
	if store == nil {
		store = NewStore()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &handlers{store: store, logger: logger}
	spec := swagger.NewSpec(opts).WithRegistry(reg)

	r := mux.NewRouter()
	r.Use(
		muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{TrustIncoming: true}),
		muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{Logger: logger}),
		muxhandlers.AccessLogMiddleware(muxhandlers.AccessLogConfig{Logger: logger, SkipPaths: []string{"/healthz"}}),
	)

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	pets := spec.Group().Tags("pets")

	pets.Route(api.HandleFunc("/pets", h.listPets).Methods(http.MethodGet).Name("listPets")).
		Summary("List pets").
		Description("Returns pets ordered by ID, optionally filtered by status.").
		Parameter(swagger.InQuery, StatusFilter{}).
		Response(http.StatusOK, PetList{}, "successful operation").
		Response(http.StatusBadRequest, ErrorResponse{}, "invalid filter")

	pets.Route(api.HandleFunc("/pets", h.addPet).Methods(http.MethodPost).Name("addPet")).
		Summary("Add a new pet to the store").
		Security(swagger.SecurityRequirement{"api_key": {}}).
		Body(NewPet{}, "Pet object that needs to be added to the store").
		Response(http.StatusCreated, Pet{}, "created").
		Response(http.StatusBadRequest, ErrorResponse{}, "invalid input")

	pets.Route(api.HandleFunc("/pets/{petId:[0-9]+}", h.getPet).Methods(http.MethodGet).Name("getPetById")).
		Summary("Find pet by ID").
		Parameter(swagger.InPath, PetID{}).
		Response(http.StatusOK, Pet{}, "successful operation").
		Response(http.StatusNotFound, ErrorResponse{}, "pet not found")

	pets.Route(api.HandleFunc("/pets/{petId:[0-9]+}", h.deletePet).Methods(http.MethodDelete).Name("deletePet")).
		Summary("Deletes a pet").
		Security(swagger.SecurityRequirement{"api_key": {}}).
		Parameter(swagger.InPath, PetID{}).
		Response(http.StatusNoContent, nil, "deleted").
		Response(http.StatusNotFound, ErrorResponse{}, "pet not found")

	spec.Handle(r, DocsPath, nil)

	return r, spec
}

type handlers struct {
	store  *Store
	logger *slog.Logger
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handlers) listPets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := q.Get("status")
	switch status {
	case "", StatusAvailable, StatusPending, StatusSold:
	default:
		h.writeError(w, r, http.StatusBadRequest, "unknown status "+strconv.Quote(status))
		return
	}

	var limit int
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			h.writeError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	pets := h.store.List(status, limit)
	h.writeJSON(w, r, http.StatusOK, PetList{Items: pets, Total: len(pets)})
}

func (h *handlers) addPet(w http.ResponseWriter, r *http.Request) {
	var in NewPet
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "malformed body")
		return
	}

	pet, err := h.store.Add(in)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, r, http.StatusCreated, pet)
}

func (h *handlers) getPet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.petID(w, r)
	if !ok {
		return
	}

	pet, err := h.store.Get(id)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, pet)
}

func (h *handlers) deletePet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.petID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) petID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["petId"], 10, 64)
	if err != nil {
		h.writeError(w, r, http.StatusNotFound, ErrNotFound.Error())
		return 0, false
	}
	return id, true
}

func (h *handlers) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		h.writeError(w, r, http.StatusNotFound, err.Error())
		return
	}
	h.writeError(w, r, http.StatusInternalServerError, err.Error())
}

func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, ErrorResponse{
		APIResponse: APIResponse{Type: "error"},
		Code:        int32(status),
		Message:     msg,
	})
}

func (h *handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "encode response", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
