package cadastro

// Field identifies a form field kind with formatting and validation rules.
// Use these constants in struct tags: `input.format:"cpf"` or `receive.validate:"cpf"`
type Field string

const (
	FieldCPF   Field = "cpf"   // 000.000.000-00
	FieldPhone Field = "phone" // (00) 00000-0000 or (00) 0000-0000
	FieldCEP   Field = "cep"   // 00000-000
	FieldEmail Field = "email" // local@domain.tld, no punctuation mask
)

// validFields contains all field kinds accepted in tags.
var validFields = map[Field]bool{
	FieldCPF:   true,
	FieldPhone: true,
	FieldCEP:   true,
	FieldEmail: true,
}

// digitFields are kinds whose canonical value is their digit sequence.
var digitFields = map[Field]int{
	FieldCPF:   CPFDigits,
	FieldPhone: PhoneDigits,
	FieldCEP:   CEPDigits,
}

// IsValidField returns true if f is a known field kind.
func IsValidField(f Field) bool {
	return validFields[f]
}

// Canonical returns the normalized value of a field kind: the capped digit
// sequence for digit fields, the value unchanged otherwise.
func Canonical(f Field, value string) string {
	if n, ok := digitFields[f]; ok {
		return digitsMax(value, n)
	}
	return value
}

// Sentinel returns the validation sentinel error for a field kind,
// or nil if the kind is unknown.
func (f Field) Sentinel() error {
	switch f {
	case FieldCPF:
		return ErrInvalidCPF
	case FieldPhone:
		return ErrInvalidPhone
	case FieldCEP:
		return ErrInvalidCEP
	case FieldEmail:
		return ErrInvalidEmail
	default:
		return nil
	}
}
