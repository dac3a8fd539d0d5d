package service

import (
	"context"
	"fmt"

	"github.com/abhay963/Notes-Saver/internal/config"
	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/internal/store"
	"github.com/abhay963/Notes-Saver/internal/utils"
	"github.com/abhay963/Notes-Saver/internal/validators"
	"github.com/abhay963/Notes-Saver/models"
)

type ClientServices struct {
	NoteService       ClientNoteService
	AppInfoService    AppInfoService
	PreferenceService PreferenceService
}

func NewClientServices(
	ctx context.Context,
	storages *store.ClientStorages,
	info models.BuildInfo,
	appCfg config.App,
	logger *logger.Logger,
) (*ClientServices, error) {
	noteSvc, err := NewClientNoteService(ctx, storages, validators.NewNoteValidator(), utils.NewUUIDGenerator(), logger)
	if err != nil {
		return nil, fmt.Errorf("create note service: %w", err)
	}

	return &ClientServices{
		NoteService:       noteSvc,
		AppInfoService:    NewAppInfoService(info, appCfg),
		PreferenceService: NewPreferenceService(ctx, storages.ThemeRepository, logger),
	}, nil
}
