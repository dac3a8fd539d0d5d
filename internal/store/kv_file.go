package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/abhay963/Notes-Saver/internal/logger"
)

// fileKeyValueStorage keeps every key in one JSON document that is rewritten
// whole on each mutation.
type fileKeyValueStorage struct {
	path   string
	logger *logger.Logger

	mu    sync.RWMutex
	items map[string]string
}

// corruptSuffix is appended to a document that could not be decoded when it
// is moved aside.
const corruptSuffix = ".corrupt"

// NewFileKeyValueStorage opens the JSON document at path. A missing file is
// treated as an empty storage and created on the first write. A document that
// cannot be decoded is renamed to path+".corrupt" and the storage starts empty.
func NewFileKeyValueStorage(path string, log *logger.Logger) (KeyValueStorage, error) {
	if log == nil {
		log = logger.Nop()
	}

	s := &fileKeyValueStorage{
		path:   path,
		logger: log,
		items:  make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValueStorage) Get(_ context.Context, key string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok, nil
}

func (s *fileKeyValueStorage) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	s.items[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "fileKeyValueStorage.Set").
			Str("key", key).
			Msg("failed to persist local storage file")
		return err
	}

	return nil
}

func (s *fileKeyValueStorage) Remove(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	if !existed {
		return nil
	}

	delete(s.items, key)
	if err := s.persist(); err != nil {
		s.items[key] = prev
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "fileKeyValueStorage.Remove").
			Str("key", key).
			Msg("failed to persist local storage file")
		return err
	}

	return nil
}

func (s *fileKeyValueStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var items map[string]string
	if err = json.Unmarshal(data, &items); err != nil {
		return s.setAside(err)
	}
	if items != nil {
		s.items = items
	}

	return nil
}

// setAside moves an undecodable document out of the way so the next write
// starts a fresh one.
func (s *fileKeyValueStorage) setAside(decodeErr error) error {
	backup := s.path + corruptSuffix
	if err := os.Rename(s.path, backup); err != nil {
		return fmt.Errorf("decode local storage file: %w (set aside: %w)", decodeErr, err)
	}

	s.logger.Warn().Err(decodeErr).
		Str("func", "fileKeyValueStorage.load").
		Str("path", s.path).
		Str("backup", backup).
		Msg("local storage file is malformed, starting with an empty storage")

	return nil
}

// persist writes the document to a temporary file in the same directory and
// renames it over path, so readers never see a partial document.
func (s *fileKeyValueStorage) persist() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create local storage dir: %w", err)
	}

	payload, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp local storage file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync local storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close local storage file: %w", err)
	}
	if err = os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}
