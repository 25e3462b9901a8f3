package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"knowli_cli/api"
	"knowli_cli/chat"
	"knowli_cli/config"
	"knowli_cli/logging"
	"knowli_cli/ui"
	"knowli_cli/version"

	tea "charm.land/bubbletea/v2"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(version.Info("knowli"))
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

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration (%s): %v\n", configPath, err)
		os.Exit(1)
	}

	slog.Info("knowli chat client started",
		"version", version.Summary(),
		"endpoint", cfg.Endpoint,
		"reset_mode", cfg.Chat.ResetMode)

	client := api.NewClient(cfg.Endpoint)
	client.SetTimeout(time.Duration(cfg.APITimeoutSeconds) * time.Second)
	session := chat.NewSession(client, cfg.Chat.InitialMessages())

	p := tea.NewProgram(ui.NewModel(session))
	if _, err := p.Run(); err != nil {
		slog.Error("Chat UI exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running chat UI: %v\n", err)
		os.Exit(1)
	}
}
