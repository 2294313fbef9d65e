package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

const (
	recordsTable     = "records"
	columnCategory   = "category"
	columnRecordKey  = "record_key"
	columnData       = "data"
	columnUpdatedAt  = "updated_at"
	currentTimestamp = "CURRENT_TIMESTAMP"
)

// sqlRecordStore keeps records in the "records" table, one row per
// (category, record_key) primary key.
type sqlRecordStore struct {
	db      *DB
	builder sq.StatementBuilderType
}

// NewSQLRecordStore returns a [RecordStore] over a migrated PostgreSQL or
// SQLite connection.
func NewSQLRecordStore(db *DB) RecordStore {
	return &sqlRecordStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(db.placeholder),
	}
}

func recordWhere(category, key string) sq.Eq {
	return sq.Eq{columnCategory: category, columnRecordKey: key}
}

func (s *sqlRecordStore) Create(ctx context.Context, category, key string, data []byte) error {
	if err := validateKey(category, key); err != nil {
		return err
	}

	query, args, err := s.builder.
		Insert(recordsTable).
		Columns(columnCategory, columnRecordKey, columnData).
		Values(category, key, string(data)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.execContext(ctx, query, args...); err != nil {
		if s.db.classify(err) == Duplicate {
			return ErrRecordAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("category", category).Msg("error inserting record")
		return err
	}

	return nil
}

func (s *sqlRecordStore) Read(ctx context.Context, category, key string) ([]byte, error) {
	if err := validateKey(category, key); err != nil {
		return nil, err
	}

	query, args, err := s.builder.
		Select(columnData).
		From(recordsTable).
		Where(recordWhere(category, key)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return []byte(data), nil
}

func (s *sqlRecordStore) Update(ctx context.Context, category, key string, data []byte) error {
	if err := validateKey(category, key); err != nil {
		return err
	}

	query, args, err := s.builder.
		Update(recordsTable).
		Set(columnData, string(data)).
		Set(columnUpdatedAt, sq.Expr(currentTimestamp)).
		Where(recordWhere(category, key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.execContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return requireAffected(res)
}

func (s *sqlRecordStore) Delete(ctx context.Context, category, key string) error {
	if err := validateKey(category, key); err != nil {
		return err
	}

	query, args, err := s.builder.
		Delete(recordsTable).
		Where(recordWhere(category, key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.execContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return requireAffected(res)
}

func (s *sqlRecordStore) Close() error {
	return s.db.Close()
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrRecordNotFound
	}

	return nil
}
