package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) (RecordStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".data")
	s, err := NewFileRecordStore(dir, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestFileRecordStore_Lifecycle(t *testing.T) {
	s, dir := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "users", "5551234567", []byte(`{"firstName":"Ann"}`)))

	onDisk, err := os.ReadFile(filepath.Join(dir, "users", "5551234567.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"Ann"}`, string(onDisk))

	got, err := s.Read(ctx, "users", "5551234567")
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"Ann"}`, string(got))

	// shorter payload must not leave a tail of the old one
	require.NoError(t, s.Update(ctx, "users", "5551234567", []byte(`{}`)))
	got, err = s.Read(ctx, "users", "5551234567")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))

	require.NoError(t, s.Delete(ctx, "users", "5551234567"))
	_, err = s.Read(ctx, "users", "5551234567")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.NoError(t, s.Close())
}

func TestFileRecordStore_CreateExisting(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "users", "5551234567", []byte(`{"a":1}`)))
	err := s.Create(ctx, "users", "5551234567", []byte(`{"a":2}`))
	assert.ErrorIs(t, err, ErrRecordAlreadyExists)

	got, err := s.Read(ctx, "users", "5551234567")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got), "failed create must not overwrite")
}

func TestFileRecordStore_MissingRecord(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	_, err := s.Read(ctx, "users", "0000000000")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = s.Update(ctx, "users", "0000000000", []byte(`{}`))
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = s.Delete(ctx, "users", "0000000000")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFileRecordStore_InvalidKeys(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "..", "../etc", "a/b", `a\b`} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, s.Create(ctx, "users", key, []byte(`{}`)), ErrInvalidKey)
			_, err := s.Read(ctx, "users", key)
			assert.ErrorIs(t, err, ErrInvalidKey)
			assert.ErrorIs(t, s.Update(ctx, "users", key, []byte(`{}`)), ErrInvalidKey)
			assert.ErrorIs(t, s.Delete(ctx, "users", key), ErrInvalidKey)
		})
	}
}
