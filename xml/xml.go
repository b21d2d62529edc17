// Package xml provides an XML codec for form payloads. Without an XMLName
// field the root element is named after the Go type, and any root element
// is accepted on decode.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/cadastro"
)

type codec struct{}

// New returns an XML codec.
func New() cadastro.Codec {
	return codec{}
}

// ContentType returns "application/xml".
func (codec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML. A nil v encodes to no bytes.
func (codec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
