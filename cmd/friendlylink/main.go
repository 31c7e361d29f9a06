package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"friendlylink/internal/platform/config"
	"friendlylink/internal/platform/logger"
)

// main loads configuration and hands stdin and stdout to the REPL. Results
// go to stdout; logs go to stderr.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("initializing friendlylink",
		"storage_driver", cfg.Storage.Driver,
		"kafka_enabled", len(cfg.Kafka.Brokers) > 0,
	)

	if err := run(ctx, cfg, os.Stdin, os.Stdout, log); err != nil {
		log.Error("friendlylink stopped with error", "error", err)
		os.Exit(1)
	}

	log.Info("friendlylink stopped")
}
