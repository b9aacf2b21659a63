package main

import (
	"estate/config"
	"estate/di"
	"estate/helper"
	"estate/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Estate Scheduling API
// @version 1.0
// @description Viewings, follow-ups and recurring maintenance for rental properties.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
