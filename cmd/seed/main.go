package main

import (
	"context"
	"os"

	"adminboard/internal/config"
	"adminboard/internal/db"
	"adminboard/internal/logging"
	"adminboard/internal/seed"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.New("seed", cfg.LogLevel, cfg.LogPretty)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBDSN, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("seed apply")
	}

	logger.Info().Msg("seed applied")
}
