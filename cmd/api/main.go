package main

import (
	"flag"
	"os"

	"bankmatch/internal/api"
	"bankmatch/internal/domain/matcher"
	"bankmatch/internal/infrastructure/config"
	"bankmatch/internal/infrastructure/logging"
	"bankmatch/internal/infrastructure/storage"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Configuration file path")
	flag.Parse()

	cfg := config.LoadOrEnvWithPath(*configFile)
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "api")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	serverCfg := api.DefaultConfig()
	if cfg.API.Port > 0 {
		serverCfg.Port = cfg.API.Port
	}
	if len(cfg.API.AllowedOrigins) > 0 {
		serverCfg.AllowedOrigins = cfg.API.AllowedOrigins
	}

	m := matcher.NewMatcher(cfg.Matching.MatcherConfig())
	server := api.NewServer(serverCfg, m, store, logger)

	if err := server.Run(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
