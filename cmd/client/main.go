package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-tasklist/internal/client"
	"github.com/MKhiriev/go-tasklist/internal/config"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/service"
	"github.com/MKhiriev/go-tasklist/internal/state"
	"github.com/MKhiriev/go-tasklist/internal/store"
	"github.com/MKhiriev/go-tasklist/internal/tui"
	"github.com/MKhiriev/go-tasklist/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, cfgErr := config.GetClientConfig()

	var logPath string
	if cfg != nil {
		logPath = cfg.App.LogPath
	}
	log := logger.NewClientLogger("tasklist-client", logPath)

	if cfgErr != nil {
		fatal(log, cfgErr, "error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		fatal(log, err, "create local storage")
	}
	defer storages.Close()

	container := state.NewContainer(state.DefaultEventBuffer, log)

	services, err := service.NewClientServices(cfg, storages, container.Events(), log)
	if err != nil {
		fatal(log, err, "create client services")
	}

	ui, err := tui.New(services, container, buildInfo, log)
	if err != nil {
		fatal(log, err, "error creating ui")
	}

	app, err := client.NewApp(services, container, ui, cfg.App, log)
	if err != nil {
		fatal(log, err, "init client app error")
	}

	if err = app.Run(); err != nil {
		fatal(log, err, "client run error")
	}
}

// fatal logs to the log file and to stderr, the terminal being the only
// place the user looks at once the UI is gone.
func fatal(log *logger.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
