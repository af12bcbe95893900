package main

import (
	"os"

	"hotelier/config"
	"hotelier/helper"
	"hotelier/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	err := helper.Runner(cfg, os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Use 'up', 'down', 'drop' or 'step-up'")
	}
}
