package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

const recordFileExt = ".json"

// fileRecordStore keeps every record in its own file:
// <baseDir>/<category>/<key>.json.
type fileRecordStore struct {
	baseDir string
	logger  *logger.Logger
}

// NewFileRecordStore returns a [RecordStore] rooted at baseDir. The directory
// is created if it does not exist.
func NewFileRecordStore(baseDir string, log *logger.Logger) (RecordStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	log.Debug().Str("dir", baseDir).Msg("file record store opened")
	return &fileRecordStore{baseDir: baseDir, logger: log}, nil
}

func (s *fileRecordStore) path(category, key string) string {
	return filepath.Join(s.baseDir, category, key+recordFileExt)
}

func (s *fileRecordStore) Create(ctx context.Context, category, key string, data []byte) error {
	if err := validateKey(category, key); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(s.baseDir, category), 0o755); err != nil {
		return fmt.Errorf("error creating category directory: %w", err)
	}

	f, err := os.OpenFile(s.path(category, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrRecordAlreadyExists
		}
		return fmt.Errorf("error creating record file: %w", err)
	}

	return writeAndClose(f, data)
}

func (s *fileRecordStore) Read(ctx context.Context, category, key string) ([]byte, error) {
	if err := validateKey(category, key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(category, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("error reading record file: %w", err)
	}

	return data, nil
}

func (s *fileRecordStore) Update(ctx context.Context, category, key string, data []byte) error {
	if err := validateKey(category, key); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path(category, key), os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("error opening record file: %w", err)
	}

	return writeAndClose(f, data)
}

func (s *fileRecordStore) Delete(ctx context.Context, category, key string) error {
	if err := validateKey(category, key); err != nil {
		return err
	}

	if err := os.Remove(s.path(category, key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("error removing record file: %w", err)
	}

	return nil
}

func (s *fileRecordStore) Close() error {
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing record file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing record file: %w", err)
	}

	return nil
}
