package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"knowli_cli/advisor"
	"knowli_cli/ai/providers"
	"knowli_cli/config"
	"knowli_cli/logging"
	"knowli_cli/server"
	"knowli_cli/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(version.Info("knowlid"))
		return
	}

	configPath := config.GetConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if _, err := logging.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", err)
	}

	if err := cfg.ValidateServer(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration (%s): %v\n", configPath, err)
		os.Exit(1)
	}

	provider, err := providers.New(cfg.Server)
	if err != nil {
		slog.Error("Failed to create LLM provider", "provider", cfg.Server.Provider, "error", err)
		fmt.Fprintf(os.Stderr, "Error creating provider: %v\n", err)
		os.Exit(1)
	}

	slog.Info("knowlid advisor server started",
		"version", version.Summary(),
		"listen_addr", cfg.Server.ListenAddr,
		"provider", cfg.Server.Provider)

	srv := server.New(advisor.NewEngine(provider))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, cfg.Server.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Advisor server exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
