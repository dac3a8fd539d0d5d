package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhay963/Notes-Saver/internal/config"
	"github.com/abhay963/Notes-Saver/models"
)

func TestAppInfoService_GetBuildInfo(t *testing.T) {
	tests := []struct {
		name string
		info models.BuildInfo
		cfg  config.App
		want models.BuildInfo
	}{
		{
			name: "linked values win",
			info: models.BuildInfo{Version: "v1.2.0", Date: "2026-10-18", Commit: "abc123"},
			cfg:  config.App{Version: "v0.0.1"},
			want: models.BuildInfo{Version: "v1.2.0", Date: "2026-10-18", Commit: "abc123"},
		},
		{
			name: "configured version used when not linked",
			info: models.BuildInfo{},
			cfg:  config.App{Version: "v0.9.0"},
			want: models.BuildInfo{Version: "v0.9.0", Date: "N/A", Commit: "N/A"},
		},
		{
			name: "nothing known",
			want: models.BuildInfo{Version: "N/A", Date: "N/A", Commit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAppInfoService(tt.info, tt.cfg)
			assert.Equal(t, tt.want, svc.GetBuildInfo(context.Background()))
		})
	}
}
