// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/abhay963/Notes-Saver/internal/app"
	"github.com/abhay963/Notes-Saver/internal/service"
)

// humanizeError maps a note store error to the message shown to the user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrValidation):
		return app.MsgFillBothFields
	case errors.Is(err, service.ErrDuplicateNote):
		return app.MsgDuplicateNote
	case errors.Is(err, service.ErrDuplicateID):
		return app.MsgDuplicateID
	case errors.Is(err, service.ErrNoteNotFound):
		return app.MsgNoteNotFound
	case errors.Is(err, service.ErrPersistence):
		return app.MsgStorageFailure
	default:
		return err.Error()
	}
}

// isStorageFailure reports whether err needs the blocking error overlay.
func isStorageFailure(err error) bool {
	return errors.Is(err, service.ErrPersistence)
}
