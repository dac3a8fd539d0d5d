package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/internal/mock"
	"github.com/abhay963/Notes-Saver/internal/store"
	"github.com/abhay963/Notes-Saver/models"
)

func TestPreferenceService_LoadsSavedTheme(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKeyValueStorage()
	require.NoError(t, kv.Set(ctx, store.DefaultThemeKey, "light"))

	svc := NewPreferenceService(ctx, store.NewThemeRepository(kv, logger.Nop()), logger.Nop())
	theme, found := svc.Theme(ctx)
	assert.True(t, found)
	assert.Equal(t, models.ThemeLight, theme)
}

func TestPreferenceService_SetThemePersists(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKeyValueStorage()
	repo := store.NewThemeRepository(kv, logger.Nop())

	svc := NewPreferenceService(ctx, repo, logger.Nop())
	_, found := svc.Theme(ctx)
	assert.False(t, found)

	require.NoError(t, svc.SetTheme(ctx, models.ThemeDark))
	raw, ok, err := kv.Get(ctx, store.DefaultThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", raw)

	reopened := NewPreferenceService(ctx, repo, logger.Nop())
	theme, found := reopened.Theme(ctx)
	assert.True(t, found)
	assert.Equal(t, models.ThemeDark, theme)
}

func TestPreferenceService_SetThemeRejectsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockThemeRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(models.Theme(""), false, nil)

	svc := NewPreferenceService(context.Background(), repo, logger.Nop())
	assert.ErrorIs(t, svc.SetTheme(context.Background(), "sepia"), ErrUnknownTheme)
}

func TestPreferenceService_SaveFailureKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockThemeRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(models.ThemeDark, true, nil)
	repo.EXPECT().Save(gomock.Any(), models.ThemeLight).Return(store.ErrStorageWrite)

	svc := NewPreferenceService(ctx, repo, logger.Nop())
	err := svc.SetTheme(ctx, models.ThemeLight)

	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "theme", pErr.Op)
	assert.ErrorIs(t, err, ErrPersistence)

	theme, _ := svc.Theme(ctx)
	assert.Equal(t, models.ThemeDark, theme)
}

func TestPreferenceService_LoadFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockThemeRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(models.Theme(""), false, errors.New("io"))

	svc := NewPreferenceService(context.Background(), repo, logger.Nop())
	_, found := svc.Theme(context.Background())
	assert.False(t, found)
}

func TestPreferenceService_WithoutRepository(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(ctx, nil, logger.Nop())

	require.NoError(t, svc.SetTheme(ctx, models.ThemeLight))
	theme, found := svc.Theme(ctx)
	assert.True(t, found)
	assert.Equal(t, models.ThemeLight, theme)
}
