package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/twitter95-hq/t95client/internal/config"
	"github.com/twitter95-hq/t95client/internal/logger"
	"github.com/twitter95-hq/t95client/pkg/twitter95"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "t95 failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	log.Infow("t95 client starting", "env", cfg.Env, "base_url", cfg.BaseURL())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := twitter95.NewFromConfig(cfg, twitter95.WithLogger(log))
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}

	feed, err := client.Feed(ctx, nil)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return fmt.Errorf("print feed: %w", err)
	}

	return nil
}
