package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"parcels/cmd"
	"parcels/internal/adapters/in/cli"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With("session", uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	root := cli.NewRootCommand(cli.StoreOptions{Driver: cfg.Store}, cmd.NewBuildFunc(cfg, logger), logger)
	err = root.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
