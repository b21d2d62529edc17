package cadastro

import (
	"errors"
	"fmt"
	"strings"
)

// Validation sentinels, one per field kind.
// Use errors.Is() on a FieldError or ValidationError to match them.
var (
	ErrInvalidCPF   = errors.New("invalid cpf")
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidPhone = errors.New("invalid phone")
	ErrInvalidCEP   = errors.New("invalid cep")
)

// Configuration and transformation sentinels.
var (
	// ErrInvalidTag indicates a struct tag names an unknown capability.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrMissingFormatter indicates a tagged formatter was not registered.
	ErrMissingFormatter = errors.New("missing formatter")

	// ErrMissingValidator indicates a tagged validator was not registered.
	ErrMissingValidator = errors.New("missing validator")

	// ErrMissingHasher indicates a tagged hasher was not registered.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrMissingMasker indicates a tagged masker was not registered.
	ErrMissingMasker = errors.New("missing masker")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrHash indicates hashing of a field failed.
	ErrHash = errors.New("hash failed")

	// ErrMask indicates a masking override failed.
	ErrMask = errors.New("mask failed")

	// ErrInvalidKey indicates a fingerprint key is missing or too short.
	ErrInvalidKey = errors.New("invalid hash key")
)

// ConfigError represents a processor configuration error.
type ConfigError struct {
	Err        error  // Underlying sentinel error (ErrInvalidTag, ErrMissingHasher, etc.)
	Field      string // Field path that triggered the error
	Capability string // Tag value that was missing or invalid
}

func (e *ConfigError) Error() string {
	switch {
	case e.Field != "" && e.Capability != "":
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Capability, e.Field)
	case e.Capability != "":
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Capability)
	case e.Field != "":
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents an error during field transformation.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrHash, ErrMask)
	Field     string // Field path that failed
	Operation string // Operation that failed
	Cause     error  // Original error from the underlying operation
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", e.Operation, e.Field)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// FieldError reports one field that failed validation.
type FieldError struct {
	Field string // Struct field path, e.g. "CPF" or "Address.CEP"
	Kind  Field  // Field kind that rejected the value
	Value string // Value as validated
	Err   error  // Kind sentinel (ErrInvalidCPF, etc.)
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError collects every field that failed validation, in
// declaration order.
type ValidationError struct {
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes each FieldError so errors.Is matches any kind sentinel.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, fe := range e.Fields {
		errs[i] = fe
	}
	return errs
}

// Field returns the first error recorded for the struct field path.
func (e *ValidationError) Field(path string) (*FieldError, bool) {
	for _, fe := range e.Fields {
		if fe.Field == path {
			return fe, true
		}
	}
	return nil, false
}

// newFieldError creates a FieldError for a rejected value.
func newFieldError(path string, kind Field, value string) *FieldError {
	return &FieldError{
		Field: path,
		Kind:  kind,
		Value: value,
		Err:   kind.Sentinel(),
	}
}

// newConfigError creates a ConfigError for missing or invalid capabilities.
func newConfigError(sentinel error, capability, field string) error {
	return &ConfigError{
		Err:        sentinel,
		Capability: capability,
		Field:      field,
	}
}

// newTransformError creates a TransformError for field transformation failures.
func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
