package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/registrygen/internal/config"
	"github.com/OCharnyshevich/registrygen/internal/fetch"
)

func main() {
	var (
		cfgPath = flag.String("config", "fetch.yaml", "path to fetch config (defaults are used if missing)")
		ver     = flag.String("version", "", "version of the data dumps (overrides config)")
		out     = flag.String("o", "", "data dir path (overrides config)")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.LoadFetch(*cfgPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	if *ver != "" {
		cfg.Version = *ver
	}
	if *out != "" {
		cfg.DataDir = *out
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := fetch.New(cfg, log, nil).Fetch(ctx); err != nil {
		log.Error("fetch failed", "error", err)
		os.Exit(1)
	}
}
