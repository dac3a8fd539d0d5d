package service

import (
	"context"

	"github.com/abhay963/Notes-Saver/internal/config"
	"github.com/abhay963/Notes-Saver/models"
)

type appInfoService struct {
	info models.BuildInfo
}

// NewAppInfoService returns an [AppInfoService] for the linked build metadata.
// A blank linked version falls back to the configured App.Version.
func NewAppInfoService(info models.BuildInfo, cfg config.App) AppInfoService {
	if info.Version == "" {
		info.Version = cfg.Version
	}

	return &appInfoService{
		info: info.Normalized(),
	}
}

func (s *appInfoService) GetBuildInfo(_ context.Context) models.BuildInfo {
	return s.info
}
