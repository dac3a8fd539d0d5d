package store

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/internal/mock"
	"github.com/abhay963/Notes-Saver/models"
)

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: "b", Title: "Second", Content: "two", CreatedAt: "2026-10-18T10:00:01Z"},
		{ID: "a", Title: "First", Content: "one\nline", CreatedAt: "2026-10-18T10:00:00Z", UpdatedAt: "2026-10-18T11:00:00Z"},
	}
}

func TestNewNoteRepository_DefaultKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStorage(ctrl)

	repo := NewNoteRepository(kv, "", logger.Nop())

	kv.EXPECT().Get(gomock.Any(), DefaultNotesKey).Return("", false, nil)
	notes, err := repo.Load(testContext())
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.NotNil(t, notes)
}

func TestNoteRepository_Load(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		found   bool
		getErr  error
		want    []models.Note
		wantErr error
	}{
		{name: "absent key", want: []models.Note{}},
		{name: "empty array", raw: `[]`, found: true, want: []models.Note{}},
		{name: "json null", raw: `null`, found: true, want: []models.Note{}},
		{
			name:  "legacy record without updatedAt",
			raw:   `[{"_id":"lq3k","title":"T","content":"C","createdAt":"2024-01-01T00:00:00.000Z"}]`,
			found: true,
			want:  []models.Note{{ID: "lq3k", Title: "T", Content: "C", CreatedAt: "2024-01-01T00:00:00.000Z"}},
		},
		{
			name:  "repeated id keeps the first",
			raw:   `[{"_id":"a","title":"new","content":"2","createdAt":"t2"},{"_id":"b","title":"B","content":"b","createdAt":"t1"},{"_id":"a","title":"old","content":"1","createdAt":"t0"}]`,
			found: true,
			want: []models.Note{
				{ID: "a", Title: "new", Content: "2", CreatedAt: "t2"},
				{ID: "b", Title: "B", Content: "b", CreatedAt: "t1"},
			},
		},
		{name: "malformed value", raw: `{"oops"`, found: true, want: []models.Note{}},
		{name: "wrong shape", raw: `{"_id":"1"}`, found: true, want: []models.Note{}},
		{name: "backend failure", getErr: errors.New("io"), wantErr: ErrStorageRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			kv := mock.NewMockKeyValueStorage(ctrl)
			kv.EXPECT().Get(gomock.Any(), "pastes").Return(tt.raw, tt.found, tt.getErr)

			notes, err := NewNoteRepository(kv, "pastes", logger.Nop()).Load(testContext())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, notes)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, notes)
		})
	}
}

func TestNoteRepository_Save(t *testing.T) {
	t.Run("writes the whole collection once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKeyValueStorage(ctrl)

		notes := sampleNotes()
		want, err := EncodeNotes(notes)
		require.NoError(t, err)
		kv.EXPECT().Set(gomock.Any(), "pastes", want).Return(nil).Times(1)

		require.NoError(t, NewNoteRepository(kv, "pastes", logger.Nop()).Save(testContext(), notes))
	})

	t.Run("empty collection is stored as []", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKeyValueStorage(ctrl)
		kv.EXPECT().Set(gomock.Any(), "pastes", "[]").Return(nil)

		require.NoError(t, NewNoteRepository(kv, "pastes", logger.Nop()).Save(testContext(), nil))
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKeyValueStorage(ctrl)
		kv.EXPECT().Set(gomock.Any(), "pastes", gomock.Any()).Return(errors.New("disk full"))

		err := NewNoteRepository(kv, "pastes", logger.Nop()).Save(testContext(), sampleNotes())
		assert.ErrorIs(t, err, ErrStorageWrite)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestNoteRepository_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStorage(ctrl)

	gomock.InOrder(
		kv.EXPECT().Remove(gomock.Any(), "pastes").Return(nil),
		kv.EXPECT().Remove(gomock.Any(), "pastes").Return(errors.New("locked")),
	)

	repo := NewNoteRepository(kv, "pastes", logger.Nop())
	require.NoError(t, repo.Clear(testContext()))
	assert.ErrorIs(t, repo.Clear(testContext()), ErrStorageWrite)
}

func TestNoteRepository_RoundTrip(t *testing.T) {
	ctx := testContext()
	repo := NewNoteRepository(NewMemoryKeyValueStorage(), "pastes", logger.Nop())

	notes := sampleNotes()
	require.NoError(t, repo.Save(ctx, notes))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, notes, loaded)

	require.NoError(t, repo.Clear(ctx))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestEncodeNotes_WireFormat(t *testing.T) {
	raw, err := EncodeNotes([]models.Note{{ID: "x", Title: "t", Content: "c", CreatedAt: "now"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"_id":"x","title":"t","content":"c","createdAt":"now"}]`, raw)
	assert.NotContains(t, raw, "updatedAt")
}

func TestDecodeEncodeNotes_PreservesStoredValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: `[]`},
		{name: "html characters", raw: `[{"_id":"m3x1k","title":"Tom & Jerry","content":"a <b> c","createdAt":"Sat Oct 18 2026 09:30:00 GMT+0000 (Coordinated Universal Time)"}]`},
		{name: "line separators", raw: "[{\"_id\":\"1\",\"title\":\"a\u2028b\",\"content\":\"c\u2029d\",\"createdAt\":\"x\"}]"},
		{name: "escaped backslash before u2028", raw: `[{"_id":"1","title":"\\u2028","content":"tab\there \"quoted\"\nnext","createdAt":"x"}]`},
		{name: "unicode", raw: `[{"_id":"2","title":"привет","content":"emoji 🎉","createdAt":"x","updatedAt":"y"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := DecodeNotes(tt.raw)
			require.NoError(t, err)

			raw, err := EncodeNotes(notes)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, raw)
		})
	}
}

func TestEncodeNotes_NoHTMLEscaping(t *testing.T) {
	raw, err := EncodeNotes([]models.Note{{ID: "x", Title: "milk & eggs", Content: "<ul>", CreatedAt: "now"}})
	require.NoError(t, err)
	assert.Equal(t, `[{"_id":"x","title":"milk & eggs","content":"<ul>","createdAt":"now"}]`, raw)
}

func TestNoteRepository_LogsThroughOwnLoggerWithoutContextLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStorage(ctrl)
	kv.EXPECT().Get(gomock.Any(), "pastes").Return(`[{"_id":"a"},{"_id":"a"}]`, true, nil)

	var buf bytes.Buffer
	own := &logger.Logger{Logger: zerolog.New(&buf)}

	notes, err := NewNoteRepository(kv, "pastes", own).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.Contains(t, buf.String(), "stored notes repeat ids")
	assert.Contains(t, buf.String(), `"dropped_ids":["a"]`)
}
