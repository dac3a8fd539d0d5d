// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Notes-Saver client.
//
// All Msg* constants are human-readable message strings shown in the terminal
// status line or written to log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgNoteCreated is shown after a new note has been saved.
	MsgNoteCreated = "Note created successfully!"

	// MsgNoteUpdated is shown after an existing note has been saved.
	MsgNoteUpdated = "Note updated successfully!"

	// MsgNoteDeleted is shown after a note has been removed.
	MsgNoteDeleted = "Paste deleted"

	// MsgAllNotesRemoved is shown after a reset.
	MsgAllNotesRemoved = "All pastes removed"

	// MsgDuplicateNote is shown when a note with the same title and content
	// already exists.
	MsgDuplicateNote = "Paste already exists!"

	// MsgDuplicateID is shown when a create reuses an existing id.
	MsgDuplicateID = "A paste with this id already exists"

	// MsgNoteNotFound is shown when an update or view targets a missing note.
	MsgNoteNotFound = "Note not found"

	// MsgFillBothFields is shown when the editor is submitted with a blank
	// title or content.
	MsgFillBothFields = "Please fill out both the title and content!"

	// MsgCopied is shown after note content has been placed on the clipboard.
	MsgCopied = "Content copied to clipboard!"

	// MsgCopyFailed is shown when the system clipboard is unavailable.
	MsgCopyFailed = "Could not copy to clipboard"

	// MsgStorageFailure is shown when the backing storage cannot be written;
	// the previous state is kept.
	MsgStorageFailure = "Could not save changes to local storage"

	// MsgNoNotes is shown on the list screen when there is nothing to show.
	MsgNoNotes = "No pastes yet. Press n to create one."

	// MsgNoMatches is shown when the search term matches no title.
	MsgNoMatches = "No pastes match your search"

	// MsgThemeChanged is shown after the colour scheme was switched; the
	// theme name follows it.
	MsgThemeChanged = "Theme: "

	// MsgConfirmReset asks before removing every note.
	MsgConfirmReset = "Remove ALL pastes? This cannot be undone. (y/n)"
)
