package swagger

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrConvert is returned when a document cannot be converted to OpenAPI 3.
var ErrConvert = errors.New("swagger: convert to openapi 3")

// ToV3 converts a generated document to an OpenAPI 3 document.
func ToV3(doc *Document) (*openapi3.T, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return convertJSON(data)
}

// ConvertV2 converts a Swagger 2.0 document given as YAML or JSON text to
// an OpenAPI 3 document.
func ConvertV2(data []byte) (*openapi3.T, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}

	js, err := json.Marshal(stringKeys(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return convertJSON(js)
}

func convertJSON(data []byte) (*openapi3.T, error) {
	var v2 openapi2.T
	if err := json.Unmarshal(data, &v2); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	if v2.Swagger == "" {
		return nil, fmt.Errorf("%w: missing swagger version", ErrConvert)
	}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return v3, nil
}

// stringKeys rewrites YAML mappings with non-string keys, such as
// unquoted status codes, into JSON-encodable maps.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}
