package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhay963/Notes-Saver/internal/config"
	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/internal/service"
)

type TUI struct {
	services *service.ClientServices
	ui       config.ClientUI
	logger   *logger.Logger
}

func New(services *service.ClientServices, ui config.ClientUI, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, ui: ui, logger: logger}, nil
}

// MainLoop runs the note browser until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services, t.ui.PreviewWords)
	if _, found := t.services.PreferenceService.Theme(ctx); !found {
		model.theme = detectTheme()
	}
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		t.logger.Err(runErr).Str("func", "TUI.MainLoop").Msg("terminal program failed")
		return runErr
	}

	if _, ok := finalModel.(mainLoopModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
