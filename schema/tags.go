package schema

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Register declares every exported field of the struct dto in the Default
// registry. See Registry.Register.
func Register(dto any) {
	Default.Register(dto)
}

// Register declares every exported field of the struct dto, deriving the
// field schema from its Go type, its json tag, and an optional swagger tag:
//
//	Name string `json:"name" swagger:"description=Pet name,example=doggie,required"`
//
// Supported swagger tag keys: type, format, description, example, required.
// Embedded structs are registered separately and inherited through
// embedding. Named struct types reachable from dto are registered too.
// Non-struct values are ignored.
func (r *Registry) Register(dto any) {
	t := typeOf(dto)
	if t == nil || t.Kind() != reflect.Struct {
		return
	}
	r.register(t, map[reflect.Type]bool{})
}

func (r *Registry) register(t reflect.Type, seen map[reflect.Type]bool) {
	if seen[t] {
		return
	}
	seen[t] = true

	for i := range t.NumField() {
		field := t.Field(i)

		jsonName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if jsonName == "-" {
			continue
		}

		// Untagged embedded structs promote their fields even when the
		// embedded type itself is unexported.
		if promoted(field) {
			r.register(derefType(field.Type), seen)
			continue
		}

		if !field.IsExported() {
			continue
		}

		name := jsonName
		if name == "" {
			name = field.Name
		}

		f, ok := r.fieldFromType(field.Type, seen)
		if !ok {
			continue
		}
		applySwaggerTag(&f, field.Tag.Get("swagger"))

		r.RegisterField(t, name, f)
	}
}

// fieldFromType maps a Go type to a Field declaration.
func (r *Registry) fieldFromType(t reflect.Type, seen map[reflect.Type]bool) (Field, bool) {
	t = derefType(t)

	if typ, format, ok := Primitive(t); ok {
		return Field{Type: typ, Format: format}, true
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		items, ok := r.fieldFromType(t.Elem(), seen)
		if !ok {
			return Field{}, false
		}
		return Field{Type: TypeArray, Items: &items}, true

	case reflect.Map, reflect.Interface:
		return Field{Type: TypeObject}, true

	case reflect.Struct:
		if t.Name() == "" {
			return Field{Type: TypeObject}, true
		}
		r.register(t, seen)
		return Field{Type: TypeObject, Ref: t}, true
	}

	return Field{}, false
}

// Primitive returns the data type and format of a scalar Go type, with
// time.Time as a date-time string and []byte as a base64 string.
func Primitive(t reflect.Type) (typ, format string, ok bool) {
	if t == nil {
		return "", "", false
	}
	t = derefType(t)

	if t == timeType {
		return TypeString, "date-time", true
	}

	switch t.Kind() {
	case reflect.Bool:
		return TypeBoolean, "", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Uint, reflect.Uint8, reflect.Uint16:
		return TypeInteger, "", true
	case reflect.Int32, reflect.Uint32:
		return TypeInteger, "int32", true
	case reflect.Int64, reflect.Uint64:
		return TypeInteger, "int64", true
	case reflect.Float32:
		return TypeNumber, "float", true
	case reflect.Float64:
		return TypeNumber, "double", true
	case reflect.String:
		return TypeString, "", true
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return TypeString, "byte", true
		}
	}
	return "", "", false
}

// applySwaggerTag parses the swagger struct tag into f.
func applySwaggerTag(f *Field, tag string) {
	if tag == "" {
		return
	}

	for part := range strings.SplitSeq(tag, ",") {
		key, value, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "type":
			f.Type = value
		case "format":
			f.Format = value
		case "description":
			f.Description = value
		case "example":
			f.Example = parseExample(f.Type, value)
		case "required":
			f.Required = true
		}
	}
}

// parseExample converts a tag value to the Go type matching the field type.
func parseExample(typ, value string) any {
	switch typ {
	case TypeInteger:
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	case TypeNumber:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	case TypeBoolean:
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return value
}

// promoted reports whether the fields of an embedded struct are flattened
// into the embedding struct, following encoding/json.
func promoted(field reflect.StructField) bool {
	if !field.Anonymous {
		return false
	}
	tag := field.Tag.Get("json")
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return false
	}
	return derefType(field.Type).Kind() == reflect.Struct
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
