package cadastro

import "strings"

// Digit capacities for each masked field.
const (
	CPFDigits   = 11
	PhoneDigits = 11
	CEPDigits   = 8
)

// Digits returns only the ASCII digit characters from s.
// Digits from other scripts are treated as punctuation.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; '0' <= c && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// digitsMax strips s to digits and keeps at most n of them.
func digitsMax(s string, n int) string {
	d := Digits(s)
	if len(d) > n {
		return d[:n]
	}
	return d
}
