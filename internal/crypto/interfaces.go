// Package crypto derives the stored credential of a user from the plaintext
// password. Two keyed, deterministic algorithms are available: HMAC-SHA256
// (the default) and Argon2id with the configured hash key as salt.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/hasher_mock.go -package=mock

// Hasher turns a plaintext password into the credential kept in a user
// record. Implementations must be deterministic for a fixed key so that the
// same password always yields the same hex digest.
type Hasher interface {
	// Hash returns the lowercase hex digest of plaintext. An empty plaintext
	// yields ErrEmptyPassword.
	Hash(plaintext string) (string, error)
}
