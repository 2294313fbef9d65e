package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

// smallArgon2 keeps the memory cost low so tests stay fast.
func smallArgon2(key string) *argon2Hasher {
	return &argon2Hasher{
		salt:         []byte(key),
		argonTime:    1,
		argonMemory:  1024,
		argonThreads: 1,
		argonKeyLen:  32,
	}
}

func TestNewHasher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.App
		wantType any
		wantErr  error
	}{
		{name: "default is hmac", cfg: config.App{PasswordHashKey: "k"}, wantType: &hmacHasher{}},
		{name: "hmac", cfg: config.App{PasswordHashKey: "k", PasswordHasher: config.HasherHMAC}, wantType: &hmacHasher{}},
		{name: "argon2", cfg: config.App{PasswordHashKey: "k", PasswordHasher: config.HasherArgon2}, wantType: &argon2Hasher{}},
		{name: "unknown", cfg: config.App{PasswordHashKey: "k", PasswordHasher: "md5"}, wantErr: ErrUnknownHasher},
		{name: "empty key", cfg: config.App{PasswordHasher: config.HasherHMAC}, wantErr: ErrEmptyHashKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHasher(tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, h)
		})
	}
}

func TestHMACHasher_Hash(t *testing.T) {
	h := NewHMACHasher("thisIsASecret")

	got, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.Equal(t, utils.HashString("pw1", "thisIsASecret"), got)
	assert.Len(t, got, 64)

	again, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.Equal(t, got, again)

	other, err := h.Hash("pw2")
	require.NoError(t, err)
	assert.NotEqual(t, got, other)
}

func TestHMACHasher_EmptyPassword(t *testing.T) {
	_, err := NewHMACHasher("k").Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestArgon2Hasher_Hash(t *testing.T) {
	h := smallArgon2("thisIsASecret")

	got, err := h.Hash("pw1")
	require.NoError(t, err)

	want := hex.EncodeToString(argon2.IDKey([]byte("pw1"), []byte("thisIsASecret"), 1, 1024, 1, 32))
	assert.Equal(t, want, got)

	again, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.Equal(t, got, again, "argon2 hasher must be deterministic for a fixed key")
}

func TestArgon2Hasher_KeyChangesDigest(t *testing.T) {
	a, err := smallArgon2("key-one").Hash("pw1")
	require.NoError(t, err)
	b, err := smallArgon2("key-two").Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestArgon2Hasher_EmptyPassword(t *testing.T) {
	_, err := NewArgon2Hasher("k").Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
