package swagger

import (
	"reflect"

	"github.com/vitalvas/swagdoc/schema"
)

// Assemble builds a document from walk results. Every parameter and
// response DTO is resolved against reg; DTOs used as a body or a response
// are also written to the definitions map under their type name, the last
// write winning when two DTOs share a name.
func Assemble(reg *schema.Registry, opts Options, results []WalkResult) *Document {
	if reg == nil {
		reg = schema.Default
	}

	doc := opts.document()
	doc.Paths = make(map[string]PathItem)
	doc.Definitions = make(map[string]*Definition)

	for _, res := range results {
		item, ok := doc.Paths[res.Path]
		if !ok {
			item = make(PathItem)
			doc.Paths[res.Path] = item
		}

		op, ok := item[res.Method]
		if !ok {
			op = &Operation{}
			item[res.Method] = op
		}

		applyRecord(reg, doc, op, res.Record)
	}

	return doc
}

// Generate walks root and assembles the resulting document.
func Generate(reg *schema.Registry, opts Options, root Node) *Document {
	return Assemble(reg, opts, Walk(root, ""))
}

// applyRecord copies the record onto op. Metadata fields are copied only
// when set; parameters are rebuilt from the record every time.
func applyRecord(reg *schema.Registry, doc *Document, op *Operation, rec *Record) {
	if len(rec.Tags) > 0 {
		op.Tags = rec.Tags
	}
	if rec.Summary != "" {
		op.Summary = rec.Summary
	}
	if rec.Description != "" {
		op.Description = rec.Description
	}
	if rec.OperationID != "" {
		op.OperationID = rec.OperationID
	}
	if len(rec.Consumes) > 0 {
		op.Consumes = rec.Consumes
	}
	if len(rec.Produces) > 0 {
		op.Produces = rec.Produces
	}
	if len(rec.Security) > 0 {
		op.Security = rec.Security
	}
	if rec.Deprecated {
		op.Deprecated = true
	}

	op.Parameters = buildParameters(reg, doc, rec.Parameter)

	if len(rec.Responses) > 0 {
		op.Responses = make(map[string]*Response, len(rec.Responses))
		for key, spec := range rec.Responses {
			resp := &Response{Description: spec.Description}
			if spec.DTO != nil {
				resp.Schema = schemaFor(reg, doc, schema.TypeOf(spec.DTO))
			}
			op.Responses[key] = resp
		}
	}
}

// buildParameters expands a parameter spec. A body DTO becomes a single
// schema reference; other locations get one parameter per DTO field.
func buildParameters(reg *schema.Registry, doc *Document, spec *ParameterSpec) []*Parameter {
	params := []*Parameter{}
	if spec == nil || spec.DTO == nil {
		return params
	}

	if spec.In == InBody {
		name := schema.Name(spec.DTO)
		if name == "" {
			name = InBody
		}
		return append(params, &Parameter{
			Name:        name,
			In:          InBody,
			Description: spec.Description,
			Required:    spec.Required,
			Schema:      schemaFor(reg, doc, schema.TypeOf(spec.DTO)),
		})
	}

	for name, f := range reg.Resolve(spec.DTO).All() {
		params = append(params, &Parameter{
			Name:        name,
			In:          spec.In,
			Description: f.Description,
			Required:    f.Required || spec.Required,
			Type:        f.Type,
			Format:      f.Format,
			Example:     f.Example,
			Items:       f.Items,
			Properties:  f.Properties,
		})
	}
	return params
}

// schemaFor returns the schema of a body or response DTO type. Named
// structs are written to the definitions and referenced; slices and arrays
// become arrays of their element schema; scalars keep their data type.
// Anything else, such as an anonymous struct or a map, is a plain object
// and gets no definition.
func schemaFor(reg *schema.Registry, doc *Document, t reflect.Type) *Schema {
	t = schema.TypeOf(t)
	if t == nil {
		return nil
	}

	if typ, format, ok := schema.Primitive(t); ok {
		return &Schema{Type: typ, Format: format}
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return &Schema{Type: schema.TypeArray, Items: schemaFor(reg, doc, t.Elem())}
	case reflect.Struct:
		if schema.Name(t) != "" {
			return addDefinition(reg, doc, t)
		}
	}
	return &Schema{Type: schema.TypeObject}
}

// addDefinition writes the DTO's definition and returns a reference to it.
func addDefinition(reg *schema.Registry, doc *Document, t reflect.Type) *Schema {
	name := schema.Name(t)
	doc.Definitions[name] = &Definition{
		Type:       schema.TypeObject,
		Properties: reg.Resolve(t),
	}
	return definitionRef(name)
}
