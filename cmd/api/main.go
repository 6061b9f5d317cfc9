package main

import (
	"os"

	"github.com/edupulse/edupulse/internal/pkg/logger"
	"github.com/edupulse/edupulse/internal/server"
)

// @title EduPulse API
// @version 1.0
// @description Academic administration dashboard backend: departments, courses, faculty, anonymous student feedback, and quality metrics.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
