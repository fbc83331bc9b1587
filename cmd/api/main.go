package main

import (
	"os"

	"github.com/tpcell/placement-portal/internal/pkg/logger"
	"github.com/tpcell/placement-portal/internal/server"
)

// @title Training & Placement Portal API
// @version 1.0
// @description API for the college training and placement cell portal

// @contact.name Placement Cell
// @contact.email tpcell@raisoni.net

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
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
	os.Exit(0)
}
