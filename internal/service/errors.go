package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation wraps a validators error when a note fails the blank
	// field checks of Create or Update.
	ErrValidation = errors.New("note validation failed")

	// ErrDuplicateNote is returned when another note already has the same
	// title and content.
	ErrDuplicateNote = errors.New("note with the same title and content already exists")

	// ErrDuplicateID is returned by Create when the id is already taken.
	ErrDuplicateID = errors.New("note with the same id already exists")

	// ErrNoteNotFound is returned when no note has the requested id.
	ErrNoteNotFound = errors.New("note not found")

	// ErrUnknownTheme is returned by SetTheme for a theme other than dark or light.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrPersistence matches every *PersistenceError.
	ErrPersistence = errors.New("failed to persist notes")
)

// PersistenceError reports a failed read or write of the backing storage.
// The in-memory collection is left as it was before the operation.
type PersistenceError struct {
	// Op is the operation that failed, such as load, create or theme.
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrPersistence.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
