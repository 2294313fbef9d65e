package validators

import (
	"strings"
	"unicode/utf8"
)

// PhoneLength is the exact number of characters of a valid phone after trimming.
const PhoneLength = 10

// String returns the trimmed value when v is a string that is not blank.
// Values of any other type are rejected without conversion.
func String(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	return s, true
}

// Phone returns the trimmed value when v is a string of exactly
// [PhoneLength] characters after trimming. A numeric phone is rejected.
func Phone(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}

	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != PhoneLength {
		return "", false
	}

	return s, true
}

// TosAgreement accepts only the boolean true. false, strings and numbers are
// all reported as absent.
func TosAgreement(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
