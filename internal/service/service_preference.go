package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/internal/store"
	"github.com/abhay963/Notes-Saver/models"
)

const opTheme = "theme"

type preferenceService struct {
	mu     sync.Mutex
	repo   store.ThemeRepository
	theme  models.Theme
	found  bool
	logger *logger.Logger
}

// NewPreferenceService loads the saved theme from repo. A failed read is
// logged and treated as no saved theme. A nil repo keeps the preference for
// the session only.
func NewPreferenceService(ctx context.Context, repo store.ThemeRepository, logger *logger.Logger) PreferenceService {
	s := &preferenceService{repo: repo, logger: logger}
	if repo == nil {
		return s
	}

	theme, found, err := repo.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Str("func", "NewPreferenceService").Msg("failed to load theme, using default")
		return s
	}
	s.theme, s.found = theme, found

	return s
}

func (s *preferenceService) Theme(_ context.Context) (models.Theme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.theme, s.found
}

func (s *preferenceService) SetTheme(ctx context.Context, theme models.Theme) error {
	if _, ok := models.ParseTheme(string(theme)); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Save(ctx, theme); err != nil {
			return &PersistenceError{Op: opTheme, Err: err}
		}
	}
	s.theme, s.found = theme, true

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("func", "preferenceService.SetTheme").
		Str("theme", string(theme)).
		Msg("theme saved")

	return nil
}
