package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tasklist/internal/config"
	"github.com/MKhiriev/go-tasklist/internal/handler"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/server"
	"github.com/MKhiriev/go-tasklist/internal/service"
	"github.com/MKhiriev/go-tasklist/internal/store"
	"github.com/MKhiriev/go-tasklist/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("tasklist-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Dur("request_timeout", cfg.Server.RequestTimeout).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
