// Package json provides a JSON codec for form payloads.
package json

import (
	"encoding/json"

	"github.com/zoobzio/cadastro"
)

type codec struct{}

// New returns a JSON codec.
func New() cadastro.Codec {
	return codec{}
}

// ContentType returns "application/json".
func (codec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
