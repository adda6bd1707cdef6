package main

import (
	"fmt"

	"github.com/MKhiriev/chain-vault/internal/config"
	myHTTP "github.com/MKhiriev/chain-vault/internal/handler/http"
	"github.com/MKhiriev/chain-vault/internal/ledger"
	"github.com/MKhiriev/chain-vault/internal/logger"
	"github.com/MKhiriev/chain-vault/internal/server"
	"github.com/MKhiriev/chain-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("chain-vault-registry")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	handler := myHTTP.NewHandler(store.NewMemoryStore(), ledger.NewMemoryRegistry(), log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
