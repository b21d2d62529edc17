// Package msgpack provides a MessagePack codec for form payloads.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/cadastro"
)

type codec struct{}

// New returns a MessagePack codec.
func New() cadastro.Codec {
	return codec{}
}

// ContentType returns "application/msgpack".
func (codec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (codec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
