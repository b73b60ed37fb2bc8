package swagger

import "strconv"

// Record carries the documentation attached to one route. Zero-valued
// fields are left out of the generated operation.
type Record struct {
	Tags        []string
	Summary     string
	Description string
	OperationID string
	Consumes    []string
	Produces    []string
	Security    []SecurityRequirement
	Deprecated  bool

	// Parameter names the DTO describing the request input and where
	// it is read from.
	Parameter *ParameterSpec

	// Responses is keyed by status code text, e.g. "200" or "default".
	Responses map[string]ResponseSpec
}

// ParameterSpec binds a DTO to a parameter location. A body location
// produces a single schema reference; any other location produces one
// parameter per DTO field.
type ParameterSpec struct {
	In          string
	DTO         any
	Description string
	Required    bool
}

// ResponseSpec binds a DTO to a response. A nil DTO produces a response
// without a schema.
type ResponseSpec struct {
	DTO         any
	Description string
}

// OperationBuilder provides a fluent API for filling a Record.
//
// See: https://swagger.io/specification/v2/#operation-object
type OperationBuilder struct {
	rec *Record
}

// NewOperation returns a builder for a new, empty Record.
func NewOperation() *OperationBuilder {
	return &OperationBuilder{rec: &Record{}}
}

// Record returns the record being built. Later builder calls keep
// modifying the same record.
func (b *OperationBuilder) Record() *Record {
	return b.rec
}

// Tags appends tags to the operation.
func (b *OperationBuilder) Tags(tags ...string) *OperationBuilder {
	b.rec.Tags = append(b.rec.Tags, tags...)
	return b
}

// Summary sets the operation summary.
func (b *OperationBuilder) Summary(s string) *OperationBuilder {
	b.rec.Summary = s
	return b
}

// Description sets the operation description.
func (b *OperationBuilder) Description(d string) *OperationBuilder {
	b.rec.Description = d
	return b
}

// OperationID sets the operation ID, overriding the route name.
func (b *OperationBuilder) OperationID(id string) *OperationBuilder {
	b.rec.OperationID = id
	return b
}

// Consumes appends request media types.
func (b *OperationBuilder) Consumes(types ...string) *OperationBuilder {
	b.rec.Consumes = append(b.rec.Consumes, types...)
	return b
}

// Produces appends response media types.
func (b *OperationBuilder) Produces(types ...string) *OperationBuilder {
	b.rec.Produces = append(b.rec.Produces, types...)
	return b
}

// Security appends operation-level security requirements.
func (b *OperationBuilder) Security(reqs ...SecurityRequirement) *OperationBuilder {
	b.rec.Security = append(b.rec.Security, reqs...)
	return b
}

// Deprecated marks the operation as deprecated.
func (b *OperationBuilder) Deprecated() *OperationBuilder {
	b.rec.Deprecated = true
	return b
}

// Parameter sets the DTO describing the operation input at location in.
// A later call replaces the earlier one.
func (b *OperationBuilder) Parameter(in string, dto any) *OperationBuilder {
	b.rec.Parameter = &ParameterSpec{In: in, DTO: dto}
	return b
}

// Body is a shortcut for a required body parameter.
func (b *OperationBuilder) Body(dto any, description string) *OperationBuilder {
	b.rec.Parameter = &ParameterSpec{In: InBody, DTO: dto, Description: description, Required: true}
	return b
}

// Response registers a response DTO for a numeric status code.
func (b *OperationBuilder) Response(statusCode int, dto any, description string) *OperationBuilder {
	return b.ResponseKey(strconv.Itoa(statusCode), dto, description)
}

// ResponseKey registers a response DTO under a status key kept verbatim,
// e.g. "default" or "2XX".
func (b *OperationBuilder) ResponseKey(key string, dto any, description string) *OperationBuilder {
	if b.rec.Responses == nil {
		b.rec.Responses = make(map[string]ResponseSpec)
	}
	b.rec.Responses[key] = ResponseSpec{DTO: dto, Description: description}
	return b
}
