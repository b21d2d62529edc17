// Package testing provides fixtures for code that uses cadastro.
package testing

import (
	"testing"

	"github.com/zoobzio/cadastro"
)

// ValidCPFs returns CPF numbers with correct check digits, unmasked.
func ValidCPFs() []string {
	return []string{
		"52998224725",
		"11144477735",
		"12345678909",
		"39053344705",
	}
}

// Pepper returns a fixed fingerprint key for tests. It is public and must
// never key real data.
func Pepper() []byte {
	return []byte("cadastro-fixture-pepper")
}

// CPF completes a nine-digit base with its check digits.
func CPF(tb testing.TB, base string) string {
	tb.Helper()
	check, ok := cadastro.CPFCheckDigits(base)
	if !ok {
		tb.Fatalf("CPF(%q): base needs nine digits", base)
	}
	return cadastro.Digits(base)[:9] + check
}

// SampleRegistration returns a form as typed, unmasked and valid.
func SampleRegistration() cadastro.Registration {
	return cadastro.Registration{
		Name:     "Maria Silva",
		CPF:      "52998224725",
		Email:    " maria@example.com ",
		Phone:    "11987654321",
		CEP:      "01310100",
		Campaign: "oncologico",
	}
}

// InvalidRegistration returns a form where CPF, email, phone and CEP all
// fail validation.
func InvalidRegistration() cadastro.Registration {
	return cadastro.Registration{
		Name:  "João",
		CPF:   "12345678900",
		Email: "joao@example",
		Phone: "1133334444",
		CEP:   "0131010",
	}
}
