package main

import (
	"os"

	"github.com/joho/godotenv"

	"studyhub/internal/pkg/logger"
	"studyhub/internal/server"
)

// @title StudyHub API
// @version 1.0
// @description Online learning backend: course videos, quizzes, mistake log and study heatmap

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env is fine; environment variables may come from elsewhere
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on process environment")
	}

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
