package config

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/santamartha/hrportal/internal/pkg/logger"
)

type envLookuper = envconfig.Lookuper

// osLookuper reads the process environment after merging an optional .env file.
// Variables already present in the environment win over the file.
func osLookuper() envLookuper {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Msg("Ignoring unreadable .env file")
	}
	return envconfig.OsLookuper()
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(ctx context.Context, config *Config, lookuper envLookuper) error {
	return envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   config,
		Lookuper: lookuper,
	})
}
