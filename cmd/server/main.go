package main

import (
	"fmt"

	"github.com/jovian-labs/nbserve/internal/config"
	"github.com/jovian-labs/nbserve/internal/contents"
	myHTTP "github.com/jovian-labs/nbserve/internal/handler/http"
	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/renderer"
	"github.com/jovian-labs/nbserve/internal/server"
	"github.com/jovian-labs/nbserve/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("nbserve-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	contentsService, err := contents.NewFSContentsService(cfg.Content, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating contents service")
	}

	services := service.NewServices(contentsService, cfg, log)

	pageRenderer, err := renderer.NewHTMLRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating page renderer")
	}

	handler := myHTTP.NewHandler(services, pageRenderer, cfg, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("base_url", cfg.App.BaseURL).
		Str("root_dir", cfg.Content.RootDir).
		Msgf("open http://%s%s?token=%s", cfg.Server.HTTPAddress, cfg.App.DefaultURL, cfg.App.Token)

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
