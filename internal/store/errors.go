package store

import "errors"

// Sentinel errors returned by [RecordStore] and [UserRepository]. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no record exists under the key.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordAlreadyExists is returned by Create when the key is taken.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrInvalidKey is returned for empty keys or keys that are not a single
	// path segment.
	ErrInvalidKey = errors.New("invalid record key")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level operation errors. These wrap the backend error that caused them.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when reading a record row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrEncodingRecord is returned when a record cannot be serialized.
	ErrEncodingRecord = errors.New("failed to encode record")

	// ErrDecodingRecord is returned when stored data is not a valid record.
	ErrDecodingRecord = errors.New("failed to decode record")
)
