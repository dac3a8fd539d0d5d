// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single user-authored paste: a title and a free-form body.
//
// The JSON layout matches the persisted "pastes" array, so a Note value is
// written to and read from the key-value backing without an intermediate
// DTO. CreatedAt and UpdatedAt are kept as strings to preserve whatever
// timestamp representation was stored originally.
type Note struct {
	// ID is an opaque identifier generated at creation and reused on edit.
	ID string `json:"_id"`

	// Title is the display name of the note.
	Title string `json:"title"`

	// Content is the note body. Line breaks are preserved verbatim.
	Content string `json:"content"`

	// CreatedAt is the human-readable creation timestamp.
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is the timestamp of the last update. Empty until the note
	// is edited for the first time.
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// SameBody reports whether n and other carry identical title and content.
func (n Note) SameBody(other Note) bool {
	return n.Title == other.Title && n.Content == other.Content
}
