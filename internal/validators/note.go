// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/abhay963/Notes-Saver/models"
)

// Field name constants used to restrict validation of a note to a subset of
// its fields.
const (
	// FieldID targets the opaque note identifier.
	FieldID = "id"

	// FieldTitle targets the display title.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"
)

// defaultNoteFields is validated when no fields are passed explicitly.
var defaultNoteFields = []string{FieldID, FieldTitle, FieldContent}

// NoteValidator implements [Validator] for models.Note and *models.Note.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate checks that the requested fields of a note are not blank.
// Whitespace-only values count as blank. Returns ErrUnsupportedType for any
// other type and ErrUnknownField for an unrecognized field name.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNote(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateNote returns the first encountered validation error or nil.
func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultNoteFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if isBlank(note.ID) {
				return ErrEmptyNoteID
			}
		case FieldTitle:
			if isBlank(note.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(note.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
