package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	// Records is the configured backend.
	Records RecordStore

	// UserRepository encodes users on top of Records.
	UserRepository UserRepository

	// Collector is non-nil when the backend needs value-log GC.
	Collector ValueLogCollector
}

// NewStorages opens the backend selected by cfg.Driver, runs schema
// migrations for SQL drivers and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		records   RecordStore
		collector ValueLogCollector
	)

	switch cfg.Driver {
	case config.DriverFiles:
		fs, err := NewFileRecordStore(cfg.Files.DataDir, log)
		if err != nil {
			return nil, err
		}
		records = fs

	case config.DriverPostgres, config.DriverSQLite:
		db, err := connectSQL(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		records = NewSQLRecordStore(db)

	case config.DriverBadger:
		bs, err := NewBadgerRecordStore(cfg.Badger.Dir, log)
		if err != nil {
			return nil, err
		}
		records, collector = bs, bs

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	return &Storages{
		Records:        records,
		UserRepository: NewUserRepository(records, log),
		Collector:      collector,
	}, nil
}

func connectSQL(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.DriverPostgres {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	return db, nil
}

// Close releases the backend.
func (s *Storages) Close() error {
	return s.Records.Close()
}
