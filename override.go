package cadastro

// Override interfaces let a form type handle one action itself instead of
// the tag-driven reflection path. When implemented, the Processor calls the
// method and skips the tags for that action.

// Formattable bypasses reflection for input.format actions.
type Formattable interface {
	// Format masks the receiver's fields in place. The receiver is a clone.
	Format(formatters map[Field]Formatter)
}

// Validatable bypasses reflection for receive.validate actions.
type Validatable interface {
	// Validate returns every rejected field, or nil.
	Validate(validators map[Field]Validator) []*FieldError
}

// Hashable bypasses reflection for store.hash actions.
type Hashable interface {
	// Hash replaces the receiver's fields with their hashes. The receiver is a clone.
	Hash(hashers map[HashAlgo]Hasher) error
}

// Maskable bypasses reflection for send.mask actions.
type Maskable interface {
	// Mask hides the receiver's personal data. The receiver is a clone.
	Mask(maskers map[MaskType]Masker) error
}

// Redactable bypasses reflection for send.redact actions.
type Redactable interface {
	// Redact replaces the receiver's fields with fixed values. The receiver is a clone.
	Redact() error
}
