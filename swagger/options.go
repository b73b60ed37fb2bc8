package swagger

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrOptionsRead is returned when the options file cannot be read.
	ErrOptionsRead = errors.New("swagger: read options")

	// ErrOptionsDecode is returned when the options file is not valid
	// YAML or JSON.
	ErrOptionsDecode = errors.New("swagger: decode options")
)

// Options holds the caller-supplied top-level document metadata. The
// generated paths and definitions are never taken from here.
type Options struct {
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
}

// LoadOptions reads options from a YAML or JSON file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrOptionsRead, err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes options from YAML or JSON text.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrOptionsDecode, err)
	}
	return opts, nil
}

func (o Options) document() *Document {
	return &Document{
		Swagger:             Version,
		Info:                o.Info,
		Host:                o.Host,
		BasePath:            o.BasePath,
		Schemes:             o.Schemes,
		Consumes:            o.Consumes,
		Produces:            o.Produces,
		Tags:                o.Tags,
		Security:            o.Security,
		SecurityDefinitions: o.SecurityDefinitions,
		ExternalDocs:        o.ExternalDocs,
	}
}
