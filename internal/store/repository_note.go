// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/models"
)

// DefaultNotesKey is the storage key holding the serialized note array.
const DefaultNotesKey = "pastes"

type noteRepository struct {
	storage KeyValueStorage
	key     string
	logger  *logger.Logger
}

// NewNoteRepository returns a [NoteRepository] keeping the whole collection
// under key in storage. An empty key falls back to [DefaultNotesKey].
func NewNoteRepository(storage KeyValueStorage, key string, logger *logger.Logger) NoteRepository {
	if key == "" {
		key = DefaultNotesKey
	}

	return &noteRepository{
		storage: storage,
		key:     key,
		logger:  logger,
	}
}

func (r *noteRepository) Load(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContextOr(ctx, r.logger)

	raw, found, err := r.storage.Get(ctx, r.key)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Load").
			Str("key", r.key).
			Msg("failed to read notes from local storage")
		return nil, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}
	if !found {
		return []models.Note{}, nil
	}

	notes, err := DecodeNotes(raw)
	if err != nil {
		// a corrupted value must not lock the user out of the app
		log.Warn().Err(err).
			Str("func", "noteRepository.Load").
			Str("key", r.key).
			Msg("stored notes are malformed, starting with an empty collection")
		return []models.Note{}, nil
	}

	notes, dropped := dropDuplicateIDs(notes)
	if len(dropped) > 0 {
		log.Warn().
			Str("func", "noteRepository.Load").
			Str("key", r.key).
			Strs("dropped_ids", dropped).
			Msg("stored notes repeat ids, keeping the most recent of each")
	}

	return notes, nil
}

func (r *noteRepository) Save(ctx context.Context, notes []models.Note) error {
	log := logger.FromContextOr(ctx, r.logger)

	raw, err := EncodeNotes(notes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	if err = r.storage.Set(ctx, r.key, raw); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Save").
			Str("key", r.key).
			Int("notes", len(notes)).
			Msg("failed to write notes to local storage")
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return nil
}

func (r *noteRepository) Clear(ctx context.Context) error {
	log := logger.FromContextOr(ctx, r.logger)

	if err := r.storage.Remove(ctx, r.key); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Clear").
			Str("key", r.key).
			Msg("failed to remove notes from local storage")
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return nil
}

// EncodeNotes serializes notes to the persisted JSON array form. A nil slice
// is encoded as "[]". Like JSON.stringify, it leaves "&", "<", ">", U+2028
// and U+2029 unescaped, so a value written by a browser client decodes and
// re-encodes to the same string.
func EncodeNotes(notes []models.Note) (string, error) {
	if notes == nil {
		notes = []models.Note{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(notes); err != nil {
		return "", fmt.Errorf("encode notes: %w", err)
	}

	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into the raw characters. Other escapes are copied as is.
func unescapeLineSeparators(payload []byte) string {
	if !bytes.Contains(payload, []byte(`\u202`)) {
		return string(payload)
	}

	var b strings.Builder
	b.Grow(len(payload))
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c != '\\' || i+1 >= len(payload) {
			b.WriteByte(c)
			continue
		}
		// every backslash in encoder output starts a two byte or \uXXXX escape
		if payload[i+1] == 'u' && i+5 < len(payload) && string(payload[i+2:i+5]) == "202" &&
			(payload[i+5] == '8' || payload[i+5] == '9') {
			b.WriteRune(rune(0x2020 + int(payload[i+5]-'0')))
			i += 5
			continue
		}
		b.WriteByte(c)
		b.WriteByte(payload[i+1])
		i++
	}

	return b.String()
}

// dropDuplicateIDs keeps the first note of every id. The collection is most
// recent first, so the kept note is the newest.
func dropDuplicateIDs(notes []models.Note) ([]models.Note, []string) {
	seen := make(map[string]struct{}, len(notes))
	kept := notes[:0:0]
	var dropped []string
	for _, n := range notes {
		if _, ok := seen[n.ID]; ok {
			dropped = append(dropped, n.ID)
			continue
		}
		seen[n.ID] = struct{}{}
		kept = append(kept, n)
	}
	if len(dropped) == 0 {
		return notes, nil
	}

	return kept, dropped
}

// DecodeNotes parses the persisted JSON array form. The JSON literal null is
// decoded as an empty collection.
func DecodeNotes(raw string) ([]models.Note, error) {
	var notes []models.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}
