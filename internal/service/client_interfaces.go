package service

import (
	"context"

	"github.com/abhay963/Notes-Saver/models"
)

// ClientNoteService is the note store: it owns the ordered in-memory note
// collection and mirrors every successful mutation to the backing storage
// before returning. At most one operation runs at a time.
type ClientNoteService interface {
	// Create validates note, rejects it when another note already has the same
	// title and content (ErrDuplicateNote) or the same id (ErrDuplicateID),
	// then inserts it at the head and persists the collection.
	Create(ctx context.Context, note models.Note) error

	// Update replaces the note with the same id and moves it to the head.
	// The original creation timestamp is kept and UpdatedAt is refreshed.
	// Returns ErrNoteNotFound when no note has that id.
	Update(ctx context.Context, note models.Note) error

	// Delete removes the note with the given id. Deleting an absent id is a
	// successful no-op and performs no write.
	Delete(ctx context.Context, id string) error

	// Reset removes every note and the persisted value.
	Reset(ctx context.Context) error

	// List returns a copy of the collection, most recent first.
	List(ctx context.Context) []models.Note

	// Get returns the note with the given id or ErrNoteNotFound.
	Get(ctx context.Context, id string) (models.Note, error)

	// Compose builds the note value an editor form submits: editID is reused
	// when set, otherwise a fresh id is generated. CreatedAt is the current time.
	Compose(title, content, editID string) models.Note

	// Submit composes a note and updates it when editID is set or creates it
	// otherwise. It returns the stored value.
	Submit(ctx context.Context, editID, title, content string) (models.Note, error)
}

// AppInfoService exposes the build metadata of the running client.
type AppInfoService interface {
	// GetBuildInfo returns version, date and commit with blanks filled as "N/A".
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// PreferenceService holds the colour scheme preference of the client.
type PreferenceService interface {
	// Theme returns the saved theme. found is false when none was saved, in
	// which case the caller picks a default.
	Theme(ctx context.Context) (theme models.Theme, found bool)

	// SetTheme validates and stores theme.
	SetTheme(ctx context.Context, theme models.Theme) error
}
