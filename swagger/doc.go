// Package swagger generates Swagger 2.0 documents from documented routes.
//
// See: https://swagger.io/specification/v2/
//
// # Documenting gorilla/mux Routes
//
// Attach documentation at the call site where the route is registered.
// The record is kept in a side table owned by the Spec; request handling is
// not affected:
//
//	r := mux.NewRouter()
//	spec := swagger.NewSpec(swagger.Options{
//	    Info: &swagger.Info{Title: "Pet Store", Version: "1.0.0"},
//	})
//
//	spec.Route(r.HandleFunc("/pets/{id:[0-9]+}", getPet).Methods(http.MethodGet)).
//	    Tags("pets").
//	    Summary("Find pet by ID").
//	    Parameter(swagger.InPath, PetID{}).
//	    Response(http.StatusOK, Pet{}, "successful operation")
//
//	doc := spec.Build(r)
//
// Named routes can be documented with Op instead; the route name becomes
// the operation ID unless one is set explicitly.
//
// # Other Routers
//
// Build a Tree (or implement Node) describing the router and generate from
// it directly:
//
//	api := swagger.NewTree().
//	    Handle("/get/:id", getRecord, http.MethodGet)
//	root := swagger.NewTree().Mount("/api", api)
//
//	doc := swagger.Generate(schema.Default, opts, root)
//
// Mount prefixes may be router templates or anchored regexp sources such as
// `^\/api\/?(?=\/|$)`, from which the literal prefix is recovered.
//
// # Parameters and Responses
//
// A body parameter DTO becomes one parameter referencing a definition. A
// DTO in any other location becomes one parameter per declared field with
// the field schema inlined. Every response DTO is referenced from the
// definitions map.
//
// # Serving
//
// Handle registers JSON, YAML and interactive UI endpoints:
//
//	spec.Handle(r, "/swagger", nil)
//	// /swagger/             -> Swagger UI
//	// /swagger/swagger.json -> JSON document
//	// /swagger/swagger.yaml -> YAML document
//
// ToV3 converts a generated document to OpenAPI 3.
package swagger
