// Package bson provides a BSON codec for form payloads.
package bson

import (
	"github.com/zoobzio/cadastro"
	"go.mongodb.org/mongo-driver/bson"
)

type codec struct{}

// New returns a BSON codec.
func New() cadastro.Codec {
	return codec{}
}

// ContentType returns "application/bson".
func (codec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (codec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
