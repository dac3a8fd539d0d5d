package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhay963/Notes-Saver/internal/logger"
)

func TestNewFileKeyValueStorage(t *testing.T) {
	t.Run("missing file is empty storage", func(t *testing.T) {
		kv, err := NewFileKeyValueStorage(filepath.Join(t.TempDir(), "absent.json"), logger.Nop())
		require.NoError(t, err)

		_, found, err := kv.Get(testContext(), "pastes")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("empty file is empty storage", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

		_, err := NewFileKeyValueStorage(path, logger.Nop())
		require.NoError(t, err)
	})

	t.Run("truncated file is set aside", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		broken := []byte(`{"pastes": "[{\"_id\":\"a\"`)
		require.NoError(t, os.WriteFile(path, broken, 0o600))

		kv, err := NewFileKeyValueStorage(path, logger.Nop())
		require.NoError(t, err)

		_, found, err := kv.Get(testContext(), "pastes")
		require.NoError(t, err)
		assert.False(t, found)

		backup, err := os.ReadFile(path + corruptSuffix)
		require.NoError(t, err)
		assert.Equal(t, broken, backup)
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		require.NoError(t, kv.Set(testContext(), "pastes", "[]"))
		reopened, err := NewFileKeyValueStorage(path, logger.Nop())
		require.NoError(t, err)
		value, found, err := reopened.Get(testContext(), "pastes")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "[]", value)
	})
}

func TestFileKeyValueStorage_PersistsAcrossInstances(t *testing.T) {
	ctx := testContext()
	path := filepath.Join(t.TempDir(), "data", "notes.json")

	first, err := NewFileKeyValueStorage(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "pastes", `[{"_id":"1"}]`))
	require.NoError(t, first.Set(ctx, "other", "x"))

	second, err := NewFileKeyValueStorage(path, logger.Nop())
	require.NoError(t, err)

	value, found, err := second.Get(ctx, "pastes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"_id":"1"}]`, value)

	require.NoError(t, second.Remove(ctx, "pastes"))

	third, err := NewFileKeyValueStorage(path, logger.Nop())
	require.NoError(t, err)
	_, found, err = third.Get(ctx, "pastes")
	require.NoError(t, err)
	assert.False(t, found)

	value, found, err = third.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "x", value)
}

func TestFileKeyValueStorage_WriteFailureKeepsPreviousValue(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.json")

	kv, err := NewFileKeyValueStorage(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "pastes", "old"))

	// a directory in place of the file makes every write fail
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))

	require.Error(t, kv.Set(ctx, "pastes", "new"))
	value, found, err := kv.Get(ctx, "pastes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "old", value)

	require.Error(t, kv.Set(ctx, "fresh", "v"))
	_, found, err = kv.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.False(t, found)

	require.Error(t, kv.Remove(ctx, "pastes"))
	_, found, err = kv.Get(ctx, "pastes")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestFileKeyValueStorage_EmptyKey(t *testing.T) {
	kv, err := NewFileKeyValueStorage(filepath.Join(t.TempDir(), "kv.json"), logger.Nop())
	require.NoError(t, err)

	_, _, err = kv.Get(testContext(), "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, kv.Set(testContext(), " ", "v"), ErrEmptyKey)
	assert.ErrorIs(t, kv.Remove(testContext(), ""), ErrEmptyKey)
}

func TestFileKeyValueStorage_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.json")

	kv, err := NewFileKeyValueStorage(path, logger.Nop())
	require.NoError(t, err)
	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, kv.Set(testContext(), "pastes", v))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.json", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
