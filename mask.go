package cadastro

import (
	"strings"
	"unicode/utf8"
)

// MaskType represents a known data format with PII masking rules.
type MaskType string

const (
	MaskCPF   MaskType = "cpf"   // 111.444.777-35 -> ***.444.777-**
	MaskEmail MaskType = "email" // alice@example.com -> a***@example.com
	MaskPhone MaskType = "phone" // (11) 98765-4321 -> (11) *****-4321
	MaskCEP   MaskType = "cep"   // 01310-100 -> 01310-***
	MaskName  MaskType = "name"  // Maria Silva -> M**** S****
)

// validMaskTypes contains all valid mask types for tag validation.
var validMaskTypes = map[MaskType]bool{
	MaskCPF:   true,
	MaskEmail: true,
	MaskPhone: true,
	MaskCEP:   true,
	MaskName:  true,
}

// IsValidMaskType returns true if the type is a known mask type.
func IsValidMaskType(mt MaskType) bool {
	return validMaskTypes[mt]
}

// Masker hides personal data for display or export.
type Masker interface {
	// Mask applies masking to the value.
	Mask(value string) string
}

// stars replaces every rune of value with '*'.
func stars(value string) string {
	return strings.Repeat("*", utf8.RuneCountInString(value))
}

// cpfMasker keeps the middle six digits, the common public display form.
type cpfMasker struct{}

// CPFMasker returns a masker for CPF numbers.
func CPFMasker() Masker {
	return &cpfMasker{}
}

func (m *cpfMasker) Mask(value string) string {
	d := Digits(value)
	if len(d) != CPFDigits {
		return stars(value)
	}
	return "***." + d[3:6] + "." + d[6:9] + "-**"
}

// emailMasker masks email format: alice@example.com -> a***@example.com
type emailMasker struct{}

// EmailMasker returns a masker for email addresses.
// Preserves first character of local part and full domain.
func EmailMasker() Masker {
	return &emailMasker{}
}

func (m *emailMasker) Mask(value string) string {
	at := strings.LastIndex(value, "@")
	if at < 1 {
		return stars(value)
	}
	first, _ := utf8.DecodeRuneInString(value)
	return string(first) + "***" + value[at:]
}

// phoneMasker keeps the area code and last four digits.
type phoneMasker struct{}

// PhoneMasker returns a masker for phone numbers with area code.
func PhoneMasker() Masker {
	return &phoneMasker{}
}

func (m *phoneMasker) Mask(value string) string {
	d := digitsMax(value, PhoneDigits)
	if len(d) < 10 {
		return stars(value)
	}
	hidden := len(d) - 6
	return "(" + d[:2] + ") " + strings.Repeat("*", hidden) + "-" + d[len(d)-4:]
}

// cepMasker keeps the five-digit region prefix.
type cepMasker struct{}

// CEPMasker returns a masker for postal codes.
func CEPMasker() Masker {
	return &cepMasker{}
}

func (m *cepMasker) Mask(value string) string {
	d := Digits(value)
	if len(d) != CEPDigits {
		return stars(value)
	}
	return d[:5] + "-***"
}

// nameMasker masks names: Maria Silva -> M**** S****
type nameMasker struct{}

// NameMasker returns a masker for personal names.
// Preserves first letter of each word, masks the rest.
func NameMasker() Masker {
	return &nameMasker{}
}

func (m *nameMasker) Mask(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		runes := []rune(word)
		words[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
	}
	return strings.Join(words, " ")
}

// builtinMaskers returns the default masker registry.
func builtinMaskers() map[MaskType]Masker {
	return map[MaskType]Masker{
		MaskCPF:   CPFMasker(),
		MaskEmail: EmailMasker(),
		MaskPhone: PhoneMasker(),
		MaskCEP:   CEPMasker(),
		MaskName:  NameMasker(),
	}
}
