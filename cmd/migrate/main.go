package main

import (
	"estate/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
