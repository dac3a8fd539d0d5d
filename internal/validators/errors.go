package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNoteID  = errors.New("note id is required")
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyContent = errors.New("content is required")
)
