// Package yaml provides a YAML codec for form payloads.
package yaml

import (
	"github.com/zoobzio/cadastro"
	"gopkg.in/yaml.v3"
)

type codec struct{}

// New returns a YAML codec.
func New() cadastro.Codec {
	return codec{}
}

// ContentType returns "application/yaml".
func (codec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (codec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
