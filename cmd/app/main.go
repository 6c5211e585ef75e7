package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/app"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/pkg/logger"
	"github.com/labstack/gommon/log"
)

func main() {

	// context + signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// config + logger
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("config load failed: ", err)
		os.Exit(1)
	}
	lg := logger.New(&cfg.Logger)

	// build application
	application, err := app.NewApp(*cfg, lg)
	if err != nil {
		lg.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// run application
	if err := application.Run(ctx); err != nil {
		lg.Error("application stopped with error", slog.String("error", err.Error()))
	}

	log.Info("crypto-analytics-dashboard stopped")
}
