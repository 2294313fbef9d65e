package store

import (
	"fmt"
	"strings"
)

// validateKey checks that category and key can be used as single path
// segments by every backend.
func validateKey(category, key string) error {
	for _, s := range []string{category, key} {
		if s == "" || s == "." || s == ".." || strings.ContainsAny(s, "/\\\x00") {
			return fmt.Errorf("%w: %q", ErrInvalidKey, s)
		}
	}

	return nil
}

// compositeKey joins category and key for flat key spaces.
func compositeKey(category, key string) []byte {
	return []byte(category + "/" + key)
}
