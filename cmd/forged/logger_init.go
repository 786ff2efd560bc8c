package main

import (
	"github.com/sainttx/itemforge/internal/config"
	"github.com/sainttx/itemforge/internal/handler"
	"github.com/sainttx/itemforge/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only helps in development builds
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		handler.Version,
		cfg.Environment,
		addSource,
	))
}
