package roster

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns e with its text fields trimmed and in Unicode NFC form,
// so a name typed with a combining accent and its precomposed spelling
// compare equal. Input boundaries (flags, record files) apply it; the store
// keeps whatever it is given.
func Normalize(e Employee) Employee {
	e.ID = normalizeText(e.ID)
	e.Name = normalizeText(e.Name)
	e.Department = normalizeText(e.Department)
	e.JoiningDate = normalizeText(e.JoiningDate)
	return e
}

// NormalizeID applies the same normalisation to a lookup key.
func NormalizeID(id string) string {
	return normalizeText(id)
}

func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
