package store

import (
	"context"
	"fmt"

	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/models"
)

// DefaultThemeKey is the storage key holding the theme preference.
const DefaultThemeKey = "theme"

type themeRepository struct {
	storage KeyValueStorage
	key     string
	logger  *logger.Logger
}

func NewThemeRepository(storage KeyValueStorage, logger *logger.Logger) ThemeRepository {
	return &themeRepository{
		storage: storage,
		key:     DefaultThemeKey,
		logger:  logger,
	}
}

func (r *themeRepository) Load(ctx context.Context) (models.Theme, bool, error) {
	log := logger.FromContextOr(ctx, r.logger)

	raw, found, err := r.storage.Get(ctx, r.key)
	if err != nil {
		log.Err(err).Str("func", "themeRepository.Load").Msg("failed to read theme from local storage")
		return "", false, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}
	if !found {
		return "", false, nil
	}

	theme, ok := models.ParseTheme(raw)
	if !ok {
		log.Warn().Str("func", "themeRepository.Load").Str("value", raw).Msg("unknown theme stored, ignoring it")
		return "", false, nil
	}

	return theme, true, nil
}

func (r *themeRepository) Save(ctx context.Context, theme models.Theme) error {
	if err := r.storage.Set(ctx, r.key, string(theme)); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", "themeRepository.Save").
			Str("theme", string(theme)).
			Msg("failed to write theme to local storage")
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return nil
}
