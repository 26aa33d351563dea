package main

import (
	"context"
	"flag"

	"github.com/arsenal-school/crm-backend/internal/bootstrap"
	"github.com/arsenal-school/crm-backend/internal/pkg/logger"
	"github.com/arsenal-school/crm-backend/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	migrationsDir := flag.String("migrations", "migrations", "path to the migrations directory")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	database, err := bootstrap.SetupDatabase(context.Background(), cfg, *migrationsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database")
	}
	defer database.Close()

	deps := bootstrap.BuildDependencies(cfg, database)
	router := bootstrap.SetupRouter(deps)

	srv := server.New(router, cfg.Server.Port)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
