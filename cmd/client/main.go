package main

import (
	"context"
	"fmt"

	"github.com/abhay963/Notes-Saver/internal/client"
	"github.com/abhay963/Notes-Saver/internal/config"
	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/internal/service"
	"github.com/abhay963/Notes-Saver/internal/store"
	"github.com/abhay963/Notes-Saver/internal/tui"
	"github.com/abhay963/Notes-Saver/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	printBuildInfo(info.Normalized())

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("notes-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("notes-client", cfg.LogFile)
	ctx := log.WithContext(context.Background())

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(ctx, localStorage, info, config.App{Version: cfg.Version}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, cfg.UI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
