package cadastro

import "regexp"

// Validator reports whether a value is acceptable for a field kind.
type Validator interface {
	// Valid accepts masked or raw input.
	Valid(value string) bool
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(string) bool

// Valid calls f(value).
func (f ValidatorFunc) Valid(value string) bool { return f(value) }

// emailPattern is a shape check, not an RFC 5322 parser. Each part excludes
// '@' and whitespace; RE2's \s is ASCII only, so vertical tab, Unicode space
// separators and the byte order mark are listed explicitly.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// ValidCPF reports whether value holds a CPF with correct check digits.
// Repeated-digit sequences such as 111.111.111-11 pass the checksum but are
// rejected.
func ValidCPF(value string) bool {
	d := Digits(value)
	if len(d) != CPFDigits || repeated(d) {
		return false
	}
	return cpfCheckDigit(d, 9) == int(d[9]-'0') &&
		cpfCheckDigit(d, 10) == int(d[10]-'0')
}

// CPFCheckDigits returns the two check digits for the first nine digits of
// base. It returns false if base has fewer than nine digits.
func CPFCheckDigits(base string) (string, bool) {
	d := Digits(base)
	if len(d) < 9 {
		return "", false
	}
	d = d[:9]
	first := cpfCheckDigit(d, 9)
	second := cpfCheckDigit(d+string(rune('0'+first)), 10)
	return string([]byte{byte('0' + first), byte('0' + second)}), true
}

// cpfCheckDigit computes the check digit over the first n digits of d,
// weighting them n+1 down to 2.
func cpfCheckDigit(d string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(d[i]-'0') * (n + 1 - i)
	}
	r := (sum * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}

// repeated reports whether every byte of d is the same.
func repeated(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

// ValidEmail reports whether value has the shape local@domain.tld.
// Whitespace and extra @ signs are rejected; nothing else is checked.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidPhone reports whether value holds exactly 11 digits: area code plus a
// nine-digit mobile number.
//
// Ten-digit landlines are rejected even though FormatPhone masks them. The
// registration page has always required a mobile number, so this is kept.
func ValidPhone(value string) bool {
	return len(Digits(value)) == PhoneDigits
}

// ValidCEP reports whether value holds exactly 8 digits.
func ValidCEP(value string) bool {
	return len(Digits(value)) == CEPDigits
}

// CPFValidator returns a validator for CPF numbers.
func CPFValidator() Validator { return ValidatorFunc(ValidCPF) }

// EmailValidator returns a validator for email addresses.
func EmailValidator() Validator { return ValidatorFunc(ValidEmail) }

// PhoneValidator returns a validator for mobile phone numbers.
func PhoneValidator() Validator { return ValidatorFunc(ValidPhone) }

// CEPValidator returns a validator for postal codes.
func CEPValidator() Validator { return ValidatorFunc(ValidCEP) }

// builtinValidators returns the default validator registry.
func builtinValidators() map[Field]Validator {
	return map[Field]Validator{
		FieldCPF:   CPFValidator(),
		FieldPhone: PhoneValidator(),
		FieldCEP:   CEPValidator(),
		FieldEmail: EmailValidator(),
	}
}
