package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhay963/Notes-Saver/internal/config"
	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/models"
)

func TestNewClientStorages(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.ClientStorage
	}{
		{name: "sqlite", cfg: config.ClientStorage{Backend: config.BackendSQLite, Key: "pastes", DSN: filepath.Join(dir, "notes.db")}},
		{name: "file", cfg: config.ClientStorage{Backend: config.BackendFile, Key: "pastes", FilePath: filepath.Join(dir, "notes.json")}},
		{name: "memory", cfg: config.ClientStorage{Backend: config.BackendMemory, Key: "pastes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()

			storages, err := NewClientStorages(ctx, tt.cfg, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, storages.Close()) })

			require.NotNil(t, storages.KeyValue)
			require.NotNil(t, storages.NoteRepository)
			require.NotNil(t, storages.ThemeRepository)

			notes := []models.Note{{ID: "1", Title: "t", Content: "c", CreatedAt: "now"}}
			require.NoError(t, storages.NoteRepository.Save(ctx, notes))

			raw, found, err := storages.KeyValue.Get(ctx, "pastes")
			require.NoError(t, err)
			assert.True(t, found)
			assert.JSONEq(t, `[{"_id":"1","title":"t","content":"c","createdAt":"now"}]`, raw)
		})
	}
}

func TestNewClientStorages_FileBackendSurvivesTornDocument(t *testing.T) {
	ctx := testContext()
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pastes": "[{\"_id\":\"a\"`), 0o600))

	storages, err := NewClientStorages(ctx, config.ClientStorage{Backend: config.BackendFile, Key: "pastes", FilePath: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, storages.Close()) })

	notes, err := storages.NoteRepository.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNewClientStorages_UnknownBackend(t *testing.T) {
	storages, err := NewClientStorages(testContext(), config.ClientStorage{Backend: "redis", Key: "pastes"}, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.Nil(t, storages)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
