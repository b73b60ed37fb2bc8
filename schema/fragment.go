package schema

import (
	"bytes"
	"iter"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Data types accepted in Field.Type.
//
// See: https://swagger.io/specification/v2/#data-types
const (
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Field declares the schema of one DTO field. Ref is consulted only when
// Type is TypeObject and Items only when Type is TypeArray.
type Field struct {
	Type        string
	Format      string
	Description string
	Example     any

	// Required marks the field as mandatory when it is expanded into
	// an operation parameter.
	Required bool

	// Ref is a value of the DTO type whose fields become the object's
	// properties.
	Ref any

	// Items describes array elements.
	Items *Field
}

// Fragment is a resolved field schema, with nested object properties and
// array items expanded inline.
//
// See: https://swagger.io/specification/v2/#schema-object
type Fragment struct {
	Type        string    `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string    `json:"format,omitempty" yaml:"format,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Example     any       `json:"example,omitempty" yaml:"example,omitempty"`
	Items       *Fragment `json:"items,omitempty" yaml:"items,omitempty"`
	Properties  *FieldMap `json:"properties,omitempty" yaml:"properties,omitempty"`

	// Required is carried to non-body parameters only; it is not a valid
	// keyword on a property schema.
	Required bool `json:"-" yaml:"-"`
}

// FieldMap is an ordered mapping from field name to Fragment. Iteration and
// serialization follow declaration order.
type FieldMap struct {
	keys   []string
	values map[string]*Fragment
}

// NewFieldMap returns an empty FieldMap.
func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]*Fragment)}
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Set stores a fragment. An existing name keeps its original position.
// The zero FieldMap is ready to use.
func (m *FieldMap) Set(name string, f *Fragment) {
	if m.values == nil {
		m.values = make(map[string]*Fragment)
	}
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = f
}

// Get returns the fragment stored under name.
func (m *FieldMap) Get(name string) (*Fragment, bool) {
	if m == nil {
		return nil, false
	}
	f, ok := m.values[name]
	return f, ok
}

// Keys returns the field names in declaration order.
func (m *FieldMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates fields in declaration order.
func (m *FieldMap) All() iter.Seq2[string, *Fragment] {
	return func(yield func(string, *Fragment) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as a JSON object in declaration order.
// A nil or empty map encodes as {}.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the input.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	m.keys = nil
	m.values = make(map[string]*Fragment)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var f Fragment
		if err := dec.Decode(&f); err != nil {
			return err
		}
		m.Set(key, &f)
	}
	_, err := dec.Token()
	return err
}

// MarshalYAML encodes the map as a YAML mapping in declaration order.
func (m *FieldMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, f := range m.All() {
		var value yaml.Node
		if err := value.Encode(f); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, keeping the key order of the input.
func (m *FieldMap) UnmarshalYAML(node *yaml.Node) error {
	m.keys = nil
	m.values = make(map[string]*Fragment)
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var f Fragment
		if err := node.Content[i+1].Decode(&f); err != nil {
			return err
		}
		m.Set(node.Content[i].Value, &f)
	}
	return nil
}
