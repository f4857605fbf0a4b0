// Package bootstrap loads configuration, logging and the database for CLI
// commands.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/infrastructure/config"
	"github.com/sevendesk/helpdesk/internal/infrastructure/database"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

// Init loads config for env, initializes the process logger and opens the
// database. Callers must defer database.Close.
func Init(env string) (*config.Config, logger.Interface, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(MapEnvToGinMode(env))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}

func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
