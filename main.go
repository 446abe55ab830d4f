package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"karyawan/config"
	"karyawan/logging"
	"karyawan/server"
)

func main() {
	logger := logging.NewJSON(os.Stdout, os.Getenv("LOG_LEVEL"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "config error", "error", err)
		os.Exit(1)
	}
	logger = logging.NewJSON(os.Stdout, cfg.LogLevel)

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
