package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/dgraph-io/badger/v3"
)

// gcDiscardRatio is the fraction of stale data a value-log file must hold
// before Badger rewrites it.
const gcDiscardRatio = 0.5

// BadgerRecordStore keeps records in an embedded Badger database under the
// key "<category>/<key>". It implements [RecordStore] and [ValueLogCollector].
type BadgerRecordStore struct {
	db       *badger.DB
	inMemory bool
	logger   *logger.Logger
}

// NewBadgerRecordStore opens (or creates) a Badger database in dir.
func NewBadgerRecordStore(dir string, log *logger.Logger) (*BadgerRecordStore, error) {
	return openBadger(badger.DefaultOptions(dir), log)
}

// NewInMemoryBadgerRecordStore opens a Badger database that lives only in memory.
func NewInMemoryBadgerRecordStore(log *logger.Logger) (*BadgerRecordStore, error) {
	return openBadger(badger.DefaultOptions("").WithInMemory(true), log)
}

func openBadger(opts badger.Options, log *logger.Logger) (*BadgerRecordStore, error) {
	db, err := badger.Open(opts.WithLogger(badgerLogger{log}))
	if err != nil {
		return nil, fmt.Errorf("error opening badger: %w", err)
	}

	return &BadgerRecordStore{db: db, inMemory: opts.InMemory, logger: log}, nil
}

func (s *BadgerRecordStore) Create(ctx context.Context, category, key string, data []byte) error {
	if err := validateKey(category, key); err != nil {
		return err
	}

	k := compositeKey(category, key)
	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(k)
		switch {
		case err == nil:
			return ErrRecordAlreadyExists
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		return txn.Set(k, data)
	})

	return wrapBadgerErr(err)
}

func (s *BadgerRecordStore) Read(ctx context.Context, category, key string) ([]byte, error) {
	if err := validateKey(category, key); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(compositeKey(category, key))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, wrapBadgerErr(err)
	}

	return data, nil
}

func (s *BadgerRecordStore) Update(ctx context.Context, category, key string, data []byte) error {
	if err := validateKey(category, key); err != nil {
		return err
	}

	k := compositeKey(category, key)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(k); err != nil {
			return err
		}

		return txn.Set(k, data)
	})

	return wrapBadgerErr(err)
}

func (s *BadgerRecordStore) Delete(ctx context.Context, category, key string) error {
	if err := validateKey(category, key); err != nil {
		return err
	}

	k := compositeKey(category, key)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(k); err != nil {
			return err
		}

		return txn.Delete(k)
	})

	return wrapBadgerErr(err)
}

func (s *BadgerRecordStore) Close() error {
	return s.db.Close()
}

// RunValueLogGC implements [ValueLogCollector]. It rewrites value-log files
// until Badger reports nothing left to collect or ctx is done.
func (s *BadgerRecordStore) RunValueLogGC(ctx context.Context) error {
	if s.inMemory {
		return nil
	}

	for ctx.Err() == nil {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("badger value log gc: %w", err)
		}
	}

	return ctx.Err()
}

func wrapBadgerErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return ErrRecordNotFound
	case errors.Is(err, ErrRecordAlreadyExists):
		return ErrRecordAlreadyExists
	default:
		return fmt.Errorf("badger: %w", err)
	}
}

// badgerLogger routes Badger's internal logging through zerolog.
type badgerLogger struct {
	log *logger.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.log.Trace().Msgf(format, args...)
}
