package swagger

import (
	"github.com/vitalvas/swagdoc/schema"
)

// Version is the value of the swagger field of every generated document.
const Version = "2.0"

// Parameter locations.
//
// See: https://swagger.io/specification/v2/#parameter-object (in)
const (
	InQuery    = "query"
	InPath     = "path"
	InBody     = "body"
	InHeader   = "header"
	InFormData = "formData"
)

// Document is the root of a Swagger 2.0 document.
//
// See: https://swagger.io/specification/v2/#swagger-object
type Document struct {
	Swagger             string                     `json:"swagger" yaml:"swagger"`
	Info                *Info                      `json:"info,omitempty" yaml:"info,omitempty"`
	Host                string                     `json:"host,omitempty" yaml:"host,omitempty"`
	BasePath            string                     `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	Schemes             []string                   `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	Consumes            []string                   `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces            []string                   `json:"produces,omitempty" yaml:"produces,omitempty"`
	Tags                []Tag                      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Security            []SecurityRequirement      `json:"security,omitempty" yaml:"security,omitempty"`
	SecurityDefinitions map[string]*SecurityScheme `json:"securityDefinitions,omitempty" yaml:"securityDefinitions,omitempty"`
	ExternalDocs        *ExternalDocs              `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
	Paths               map[string]PathItem        `json:"paths" yaml:"paths"`
	Definitions         map[string]*Definition     `json:"definitions" yaml:"definitions"`
}

// Info provides metadata about the API.
//
// See: https://swagger.io/specification/v2/#info-object
type Info struct {
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License        *License `json:"license,omitempty" yaml:"license,omitempty"`
	Version        string   `json:"version" yaml:"version"`
}

// Contact information for the exposed API.
//
// See: https://swagger.io/specification/v2/#contact-object
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License information for the exposed API.
//
// See: https://swagger.io/specification/v2/#license-object
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Tag adds metadata to a tag used by operations.
//
// See: https://swagger.io/specification/v2/#tag-object
type Tag struct {
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// ExternalDocs references external documentation.
//
// See: https://swagger.io/specification/v2/#external-documentation-object
type ExternalDocs struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url" yaml:"url"`
}

// SecurityRequirement maps security scheme names to required scopes.
//
// See: https://swagger.io/specification/v2/#security-requirement-object
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme: "basic", "apiKey" or "oauth2".
//
// See: https://swagger.io/specification/v2/#security-scheme-object
type SecurityScheme struct {
	Type             string            `json:"type" yaml:"type"`
	Description      string            `json:"description,omitempty" yaml:"description,omitempty"`
	Name             string            `json:"name,omitempty" yaml:"name,omitempty"`
	In               string            `json:"in,omitempty" yaml:"in,omitempty"`
	Flow             string            `json:"flow,omitempty" yaml:"flow,omitempty"`
	AuthorizationURL string            `json:"authorizationUrl,omitempty" yaml:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty" yaml:"tokenUrl,omitempty"`
	Scopes           map[string]string `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// PathItem maps lowercase HTTP methods to operations.
//
// See: https://swagger.io/specification/v2/#path-item-object
type PathItem map[string]*Operation

// Operation describes a single API operation on a path. Parameters is
// always present, possibly empty.
//
// See: https://swagger.io/specification/v2/#operation-object
type Operation struct {
	Tags        []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string                `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Consumes    []string              `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces    []string              `json:"produces,omitempty" yaml:"produces,omitempty"`
	Parameters  []*Parameter          `json:"parameters" yaml:"parameters"`
	Responses   map[string]*Response  `json:"responses,omitempty" yaml:"responses,omitempty"`
	Deprecated  bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Security    []SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`
}

// Parameter describes an operation parameter. Body parameters carry a
// Schema reference; other locations carry the field fragment inline.
//
// See: https://swagger.io/specification/v2/#parameter-object
type Parameter struct {
	Name        string  `json:"name" yaml:"name"`
	In          string  `json:"in" yaml:"in"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	Type       string           `json:"type,omitempty" yaml:"type,omitempty"`
	Format     string           `json:"format,omitempty" yaml:"format,omitempty"`
	Example    any              `json:"example,omitempty" yaml:"example,omitempty"`
	Items      *schema.Fragment `json:"items,omitempty" yaml:"items,omitempty"`
	Properties *schema.FieldMap `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Response describes a single response of an operation.
//
// See: https://swagger.io/specification/v2/#response-object
type Response struct {
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Schema is the schema of a body parameter or a response: a reference to
// a definition, an array of schemas, or a plain type.
//
// See: https://swagger.io/specification/v2/#schema-object
type Schema struct {
	Ref    string  `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type   string  `json:"type,omitempty" yaml:"type,omitempty"`
	Format string  `json:"format,omitempty" yaml:"format,omitempty"`
	Items  *Schema `json:"items,omitempty" yaml:"items,omitempty"`
}

// Definition is a named object schema built from a DTO field map.
//
// See: https://swagger.io/specification/v2/#definitions-object
type Definition struct {
	Type       string           `json:"type" yaml:"type"`
	Properties *schema.FieldMap `json:"properties" yaml:"properties"`
}

// definitionRef returns the $ref pointer for a definition name.
func definitionRef(name string) *Schema {
	return &Schema{Ref: "#/definitions/" + name}
}
