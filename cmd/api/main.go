package main

import (
	"os"

	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
	"github.com/hackathon-manager/hackathon/internal/server"
)

// @title Hackathon Manager API
// @version 1.0
// @description API for managing hackathon events, projects, teams and parking bookings

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
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
