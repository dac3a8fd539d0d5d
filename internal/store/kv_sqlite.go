package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/abhay963/Notes-Saver/internal/logger"
)

type sqliteKeyValueStorage struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteKeyValueStorage returns a [KeyValueStorage] backed by the
// local_storage table of db.
func NewSQLiteKeyValueStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	return &sqliteKeyValueStorage{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteKeyValueStorage) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if strings.TrimSpace(key) == "" {
		return "", false, ErrEmptyKey
	}

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", false, err
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStorage.Get").
			Str("key", key).
			Msg("failed to query local storage value")
		return "", false, fmt.Errorf("%w (key=%s): %w", ErrExecutingQuery, key, err)
	}

	return value, true, nil
}

func (s *sqliteKeyValueStorage) Set(ctx context.Context, key, value string) error {
	log := logger.FromContextOr(ctx, s.logger)

	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	query, args, err := buildSetValueQuery(key, value)
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStorage.Set").
			Str("key", key).
			Int("value_len", len(value)).
			Msg("failed to execute upsert for local storage value")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (s *sqliteKeyValueStorage) Remove(ctx context.Context, key string) error {
	log := logger.FromContextOr(ctx, s.logger)

	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	query, args, err := buildRemoveValueQuery(key)
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStorage.Remove").
			Str("key", key).
			Msg("failed to execute delete for local storage value")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}
