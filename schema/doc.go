// Package schema holds the process-wide registry of DTO field declarations
// used to describe request and response payloads in Swagger 2.0 documents.
//
// A DTO is any Go type used as a documentation key. Fields are declared
// explicitly, usually from an init function next to the type:
//
//	type Pet struct {
//	    ID   int64  `json:"id"`
//	    Name string `json:"name"`
//	}
//
//	func init() {
//	    schema.RegisterField(Pet{}, "id", schema.Field{Type: schema.TypeInteger, Format: "int64"})
//	    schema.RegisterField(Pet{}, "name", schema.Field{Type: schema.TypeString, Example: "doggie"})
//	}
//
// Or derived from the struct definition and its tags:
//
//	type Pet struct {
//	    ID   int64  `json:"id" swagger:"format=int64,example=10"`
//	    Name string `json:"name" swagger:"description=Pet name,required"`
//	}
//
//	func init() { schema.Register(Pet{}) }
//
// # Nested Schemas
//
// Object fields point at another DTO through Ref; array fields describe their
// elements through Items, which may nest to any depth:
//
//	schema.RegisterField(Owner{}, "pets", schema.Field{
//	    Type:  schema.TypeArray,
//	    Items: &schema.Field{Type: schema.TypeObject, Ref: Pet{}},
//	})
//
// References are resolved when a document is generated, not when the field
// is declared, so declaration order between DTOs does not matter.
//
// # Inheritance
//
// Embedded structs contribute their declared fields ahead of the embedding
// type's own fields:
//
//	type Base struct{ Type int }
//	type Error struct {
//	    Base
//	    Code    int
//	    Message string
//	}
//
// Resolving Error yields type, code and message.
package schema
