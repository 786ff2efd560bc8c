package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sainttx/itemforge/internal/config"
	"github.com/sainttx/itemforge/internal/forge"
	"github.com/sainttx/itemforge/internal/registry"
	"github.com/sainttx/itemforge/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	initLogger(cfg)

	loader := registry.NewLoader()
	defs, err := loader.Load(cfg.ConfigDir)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	if err := loader.Validate(defs); err != nil {
		log.Fatalf("Invalid definitions: %v", err)
	}

	reg, err := registry.New(defs)
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}

	forgeService := forge.NewService(reg)
	srv := server.NewServer(cfg.Port, forgeService)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
