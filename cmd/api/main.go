package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/haca/placement/internal/pkg/logger"
	"github.com/haca/placement/internal/server"
)

// @title HACA Placement API
// @version 1.0
// @description API connecting HACA students with recruiters

// @contact.name API Support
// @contact.email support@haca.app

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
	// Load .env if present; real deployments set env vars directly
	_ = godotenv.Load()

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
