package store

import "errors"

// Sentinel errors returned by the key-value backings and the note repository.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyKey is returned when a key-value operation receives a blank key.
	ErrEmptyKey = errors.New("storage key is empty")

	// ErrUnknownBackend is returned by [NewClientStorages] when the configured
	// backend name is not supported.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrStorageRead is returned (wrapped) when the backing cannot be read.
	ErrStorageRead = errors.New("failed to read from local storage")

	// ErrStorageWrite is returned (wrapped) when the backing cannot be
	// written or the value cannot be removed.
	ErrStorageWrite = errors.New("failed to write to local storage")
)

// Low-level database operation errors wrapped by the SQLite backing.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
