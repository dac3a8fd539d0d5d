package store

import (
	"context"
	"fmt"

	"github.com/abhay963/Notes-Saver/internal/config"
	"github.com/abhay963/Notes-Saver/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed to the service layer.
type ClientStorages struct {
	// KeyValue is the raw backing selected by configuration.
	KeyValue KeyValueStorage

	// NoteRepository persists the note collection on top of KeyValue.
	NoteRepository NoteRepository

	// ThemeRepository persists the colour scheme preference on top of KeyValue.
	ThemeRepository ThemeRepository

	closer func() error
}

// NewClientStorages initialises the client storage layer for cfg.Backend:
//   - sqlite: opens the database at cfg.DSN and runs the goose migrations;
//   - file: opens the JSON document at cfg.FilePath;
//   - memory: keeps everything in process memory.
//
// The note repository is bound to cfg.Key, the theme repository to
// [DefaultThemeKey].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	storages := &ClientStorages{closer: func() error { return nil }}

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		storages.KeyValue = NewSQLiteKeyValueStorage(db, logger)
		storages.closer = db.Close

	case config.BackendFile:
		kv, err := NewFileKeyValueStorage(cfg.FilePath, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		storages.KeyValue = kv

	case config.BackendMemory:
		storages.KeyValue = NewMemoryKeyValueStorage()

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	storages.NoteRepository = NewNoteRepository(storages.KeyValue, cfg.Key, logger)
	storages.ThemeRepository = NewThemeRepository(storages.KeyValue, logger)

	return storages, nil
}

// Close releases the resources held by the backing (the SQLite connection).
func (s *ClientStorages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}
