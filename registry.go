package cadastro

import (
	"reflect"
	"sync"
)

// registryKey combines form type and codec content type.
type registryKey struct {
	typ         reflect.Type
	contentType string
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns the shared processor for T and codec's content type, building
// it on first use. Capabilities set on the returned processor are visible to
// every caller of Use with the same key.
func Use[T Cloner[T]](codec Codec) (*Processor[T], error) {
	key := registryKey{typ: reflect.TypeFor[T](), contentType: codec.ContentType()}

	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	registryMu.RUnlock()

	registryMu.Lock()
	defer registryMu.Unlock()

	if cached, ok := registry[key]; ok {
		return cached.(*Processor[T]), nil
	}

	processor, err := NewProcessor[T](codec)
	if err != nil {
		return nil, err
	}

	registry[key] = processor
	return processor, nil
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
