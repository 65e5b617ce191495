package main

import (
	"context"
	"os"

	"github.com/santamartha/hrportal/internal/pkg/logger"
	"github.com/santamartha/hrportal/internal/server"
)

// @title Farmacia Santa Martha HR Portal API
// @version 1.0
// @description Accounts, course enrollments and job applications for pharmacy staff.

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token returned by /api/auth/login

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
