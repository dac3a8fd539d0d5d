package store

import (
	"context"

	"github.com/abhay963/Notes-Saver/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStorage is the persistence port of the note store: a durable,
// synchronous, string-keyed storage facility. It plays the role a browser's
// localStorage plays for a web client.
type KeyValueStorage interface {
	// Get returns the value stored under key. found is false when the key is
	// absent; err is reserved for backend failures.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// NoteRepository reads and writes the whole note collection stored under a
// single key of a [KeyValueStorage].
type NoteRepository interface {
	// Load returns the persisted collection. A missing or malformed value
	// yields an empty collection.
	Load(ctx context.Context) ([]models.Note, error)

	// Save serializes and stores the full collection in one write.
	Save(ctx context.Context, notes []models.Note) error

	// Clear removes the persisted collection.
	Clear(ctx context.Context) error
}

// ThemeRepository persists the colour scheme preference under its own key of
// a [KeyValueStorage].
type ThemeRepository interface {
	// Load returns the stored theme. found is false when nothing valid is
	// stored.
	Load(ctx context.Context) (theme models.Theme, found bool, err error)

	// Save stores theme.
	Save(ctx context.Context, theme models.Theme) error
}
