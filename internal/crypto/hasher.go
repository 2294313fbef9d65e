// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"golang.org/x/crypto/argon2"
)

// NewHasher builds the [Hasher] selected by cfg.PasswordHasher. An empty
// name selects HMAC-SHA256.
func NewHasher(cfg config.App) (Hasher, error) {
	if cfg.PasswordHashKey == "" {
		return nil, ErrEmptyHashKey
	}

	switch cfg.PasswordHasher {
	case config.HasherHMAC, "":
		return NewHMACHasher(cfg.PasswordHashKey), nil
	case config.HasherArgon2:
		return NewArgon2Hasher(cfg.PasswordHashKey), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, cfg.PasswordHasher)
	}
}

type hmacHasher struct {
	hashKey string
}

// NewHMACHasher returns a [Hasher] computing HMAC-SHA256(hashKey, plaintext).
func NewHMACHasher(hashKey string) Hasher {
	return &hmacHasher{hashKey: hashKey}
}

func (h *hmacHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	return utils.HashString(plaintext, h.hashKey), nil
}

// argon2Hasher derives the credential with Argon2id. The hash key doubles as
// the salt, which keeps the output deterministic for lookups by value.
type argon2Hasher struct {
	salt []byte

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewArgon2Hasher returns an Argon2id [Hasher] with the OWASP (2024)
// parameters:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewArgon2Hasher(hashKey string) Hasher {
	return &argon2Hasher{
		salt:         []byte(hashKey),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

func (h *argon2Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	key := argon2.IDKey(
		[]byte(plaintext),
		h.salt,
		h.argonTime,
		h.argonMemory,
		h.argonThreads,
		h.argonKeyLen,
	)

	return hex.EncodeToString(key), nil
}
