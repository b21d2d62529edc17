package cadastro

import "strings"

// Formatter applies a display mask to live-typed input.
type Formatter interface {
	// Format returns the masked value. It must be safe to assign back to
	// the input after every keystroke.
	Format(value string) string
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(string) string

// Format calls f(value).
func (f FormatterFunc) Format(value string) string { return f(value) }

// FormatCPF masks a CPF as 000.000.000-00, progressively.
// Input is stripped to digits and capped at 11 before masking.
func FormatCPF(value string) string {
	d := digitsMax(value, CPFDigits)

	var b strings.Builder
	b.Grow(len(d) + 3)
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// FormatPhone masks a phone number with area code.
//
//	11987654321 -> (11) 98765-4321  mobile, 11 digits
//	1133334444  -> (11) 3333-4444   landline, 10 digits
//
// The first group grows to five digits only once the eleventh digit arrives.
func FormatPhone(value string) string {
	d := digitsMax(value, PhoneDigits)
	n := len(d)
	if n == 0 {
		return ""
	}

	split := 6
	if n == PhoneDigits {
		split = 7
	}

	var b strings.Builder
	b.Grow(n + 5)
	b.WriteByte('(')
	if n <= 2 {
		b.WriteString(d)
		return b.String()
	}
	b.WriteString(d[:2])
	b.WriteString(") ")
	if n < split {
		b.WriteString(d[2:])
		return b.String()
	}
	b.WriteString(d[2:split])
	if n > split {
		b.WriteByte('-')
		b.WriteString(d[split:])
	}
	return b.String()
}

// FormatCEP masks a postal code as 00000-000.
func FormatCEP(value string) string {
	d := digitsMax(value, CEPDigits)
	if len(d) > 5 {
		return d[:5] + "-" + d[5:]
	}
	return d
}

// formatEmail trims surrounding whitespace. Email has no punctuation mask.
func formatEmail(value string) string {
	return strings.TrimSpace(value)
}

// CPFFormatter returns a formatter for CPF numbers.
func CPFFormatter() Formatter { return FormatterFunc(FormatCPF) }

// PhoneFormatter returns a formatter for phone numbers.
func PhoneFormatter() Formatter { return FormatterFunc(FormatPhone) }

// CEPFormatter returns a formatter for postal codes.
func CEPFormatter() Formatter { return FormatterFunc(FormatCEP) }

// EmailFormatter returns a formatter that trims email input.
func EmailFormatter() Formatter { return FormatterFunc(formatEmail) }

// builtinFormatters returns the default formatter registry.
func builtinFormatters() map[Field]Formatter {
	return map[Field]Formatter{
		FieldCPF:   CPFFormatter(),
		FieldPhone: PhoneFormatter(),
		FieldCEP:   CEPFormatter(),
		FieldEmail: EmailFormatter(),
	}
}
