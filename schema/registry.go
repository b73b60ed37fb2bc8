package schema

import (
	"reflect"
	"strings"
	"sync"
)

// Registry maps DTO types to their declared fields. It is safe for
// concurrent use; registration is additive and never removes fields.
type Registry struct {
	mu    sync.RWMutex
	types map[reflect.Type]*declaration
}

// declaration keeps the fields declared directly on one type, in order.
type declaration struct {
	order  []string
	fields map[string]Field
}

// Default is the process-wide registry used by the package-level functions.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[reflect.Type]*declaration)}
}

// RegisterField declares a field on the DTO type of dto in the Default registry.
func RegisterField(dto any, name string, f Field) {
	Default.RegisterField(dto, name, f)
}

// Resolve returns the resolved field map of dto from the Default registry.
func Resolve(dto any) *FieldMap {
	return Default.Resolve(dto)
}

// RegisterField associates f with name under the DTO type of dto. A field
// registered twice keeps its first position and takes the latest value.
func (r *Registry) RegisterField(dto any, name string, f Field) {
	t := typeOf(dto)
	if t == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	decl, ok := r.types[t]
	if !ok {
		decl = &declaration{fields: make(map[string]Field)}
		r.types[t] = decl
	}
	if _, exists := decl.fields[name]; !exists {
		decl.order = append(decl.order, name)
	}
	decl.fields[name] = f
}

// Known reports whether dto, or any struct it embeds, declared fields.
func (r *Registry) Known(dto any) bool {
	t := typeOf(dto)
	if t == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.known(t)
}

// Resolve returns the field map of dto with every object reference and
// array item expanded. A type that never declared a field resolves to an
// empty map.
func (r *Registry) Resolve(dto any) *FieldMap {
	t := typeOf(dto)
	if t == nil {
		return NewFieldMap()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolveType(t, map[reflect.Type]bool{})
}

func (r *Registry) known(t reflect.Type) bool {
	if _, ok := r.types[t]; ok {
		return true
	}
	for _, embedded := range embeddedTypes(t) {
		if r.known(embedded) {
			return true
		}
	}
	return false
}

// resolveType builds the field map of t. visiting holds the types on the
// current resolution path and stops self-referencing DTOs from recursing.
func (r *Registry) resolveType(t reflect.Type, visiting map[reflect.Type]bool) *FieldMap {
	out := NewFieldMap()

	visiting[t] = true
	defer delete(visiting, t)

	for _, embedded := range embeddedTypes(t) {
		if visiting[embedded] {
			continue
		}
		for name, f := range r.resolveType(embedded, visiting).All() {
			out.Set(name, f)
		}
	}

	decl, ok := r.types[t]
	if !ok {
		return out
	}
	for _, name := range decl.order {
		out.Set(name, r.resolveField(decl.fields[name], visiting))
	}
	return out
}

func (r *Registry) resolveField(f Field, visiting map[reflect.Type]bool) *Fragment {
	frag := &Fragment{
		Type:        f.Type,
		Format:      f.Format,
		Description: f.Description,
		Example:     f.Example,
		Required:    f.Required,
	}

	switch f.Type {
	case TypeObject:
		ref := typeOf(f.Ref)
		if ref != nil && !visiting[ref] && r.known(ref) {
			frag.Properties = r.resolveType(ref, visiting)
		}
	case TypeArray:
		if f.Items != nil {
			frag.Items = r.resolveField(*f.Items, visiting)
		}
	}

	return frag
}

// Name returns the definition name of dto: the simple type name with
// generic type arguments folded in (Page[pkg.User] -> PageUser).
func Name(dto any) string {
	t := typeOf(dto)
	if t == nil {
		return ""
	}
	return sanitizeName(t.Name())
}

func sanitizeName(name string) string {
	idx := strings.IndexByte(name, '[')
	if idx < 0 {
		return name
	}

	base := name[:idx]
	inner := strings.TrimSuffix(name[idx+1:], "]")

	var b strings.Builder
	b.WriteString(base)
	for arg := range strings.SplitSeq(inner, ",") {
		arg = strings.TrimSpace(arg)
		isList := strings.HasPrefix(arg, "[]")
		arg = strings.TrimPrefix(arg, "[]")
		arg = strings.TrimPrefix(arg, "*")
		if dot := strings.LastIndexByte(arg, '.'); dot >= 0 {
			arg = arg[dot+1:]
		}
		b.WriteString(arg)
		if isList {
			b.WriteString("List")
		}
	}
	return b.String()
}

// TypeOf returns the DTO type of v: pointers are dereferenced and a
// reflect.Type is returned as-is. A nil v gives nil.
func TypeOf(v any) reflect.Type {
	return typeOf(v)
}

// typeOf returns the DTO type of v. Pointers are dereferenced and a
// reflect.Type is accepted as-is.
func typeOf(v any) reflect.Type {
	if v == nil {
		return nil
	}
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// embeddedTypes lists the struct types whose fields t inherits, in
// declaration order. Embedded structs with a json name are plain fields.
func embeddedTypes(t reflect.Type) []reflect.Type {
	if t.Kind() != reflect.Struct {
		return nil
	}

	var out []reflect.Type
	for i := range t.NumField() {
		if field := t.Field(i); promoted(field) {
			out = append(out, derefType(field.Type))
		}
	}
	return out
}
