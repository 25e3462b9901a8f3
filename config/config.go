package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"knowli_cli/api"
	"knowli_cli/chat"
)

// Reset modes for the conversation initial state.
const (
	ResetModeGreeting = "greeting"
	ResetModeEmpty    = "empty"
)

// Supported LLM providers for the advisor server.
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

// Config represents the application configuration
type Config struct {
	Endpoint          string       `json:"endpoint"`
	APITimeoutSeconds int          `json:"api_timeout_seconds"`
	Chat              ChatConfig   `json:"chat"`
	Server            ServerConfig `json:"server"`
	LogLevel          string       `json:"log_level"`
	LogFile           string       `json:"log_file"`
	LogFormat         string       `json:"log_format"`
}

// ChatConfig holds client-side conversation configuration
type ChatConfig struct {
	Greeting  string `json:"greeting"`
	ResetMode string `json:"reset_mode"` // "greeting" or "empty"
}

// ServerConfig holds the advisor server configuration
type ServerConfig struct {
	ListenAddr string       `json:"listen_addr"`
	Provider   string       `json:"provider"` // "google" or "openai"
	Google     GoogleConfig `json:"google"`
	OpenAI     OpenAIConfig `json:"openai"`
}

// GoogleConfig holds the Google AI (Gemini) provider configuration
type GoogleConfig struct {
	APIKey            string  `json:"api_key"`
	Model             string  `json:"model"`
	Temperature       float64 `json:"temperature"`
	APITimeoutSeconds int     `json:"api_timeout_seconds"`
}

// OpenAIConfig holds the OpenAI provider configuration
type OpenAIConfig struct {
	APIKey            string  `json:"api_key"`
	APIURL            string  `json:"api_url"`
	Model             string  `json:"model"`
	Temperature       float64 `json:"temperature"`
	APITimeoutSeconds int     `json:"api_timeout_seconds"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		Endpoint:          "http://localhost:8000",
		APITimeoutSeconds: 30,
		Chat: ChatConfig{
			Greeting:  chat.DefaultGreeting,
			ResetMode: ResetModeGreeting,
		},
		Server: ServerConfig{
			ListenAddr: ":8000",
			Provider:   ProviderGoogle,
			Google: GoogleConfig{
				Model:             "gemini-2.0-flash-001",
				Temperature:       0.7,
				APITimeoutSeconds: 60,
			},
			OpenAI: OpenAIConfig{
				Model:             "gpt-4o",
				Temperature:       0.7,
				APITimeoutSeconds: 30,
			},
		},
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load loads the configuration from the specified path.
// If the file doesn't exist, it creates one with default values.
// Environment variables override config file values.
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg = Default()
		if err := Save(configPath, cfg); err != nil {
			return Config{}, fmt.Errorf("failed to create default config: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	return applyEnvironmentOverrides(cfg), nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config
func applyEnvironmentOverrides(cfg Config) Config {
	if endpoint := os.Getenv("KNOWLI_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if timeoutStr := os.Getenv("KNOWLI_API_TIMEOUT"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil && timeout > 0 {
			cfg.APITimeoutSeconds = timeout
		}
	}
	if resetMode := strings.ToLower(os.Getenv("KNOWLI_RESET_MODE")); resetMode == ResetModeGreeting || resetMode == ResetModeEmpty {
		cfg.Chat.ResetMode = resetMode
	}
	if logLevel := strings.ToLower(os.Getenv("KNOWLI_LOG_LEVEL")); logLevel != "" {
		for _, valid := range []string{"debug", "info", "warn", "error"} {
			if logLevel == valid {
				cfg.LogLevel = logLevel
				break
			}
		}
	}
	if addr := os.Getenv("KNOWLI_LISTEN_ADDR"); addr != "" {
		cfg.Server.ListenAddr = addr
	}
	if provider := strings.ToLower(os.Getenv("KNOWLI_PROVIDER")); provider == ProviderGoogle || provider == ProviderOpenAI {
		cfg.Server.Provider = provider
	}
	if apiKey := os.Getenv("KNOWLI_GOOGLE_API_KEY"); apiKey != "" {
		cfg.Server.Google.APIKey = apiKey
	}
	if apiKey := os.Getenv("KNOWLI_OPENAI_API_KEY"); apiKey != "" {
		cfg.Server.OpenAI.APIKey = apiKey
	}
	return cfg
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitialMessages returns the conversation initial state for the configured
// reset mode.
func (c ChatConfig) InitialMessages() []api.Message {
	if c.ResetMode == ResetModeEmpty {
		return nil
	}
	greeting := c.Greeting
	if greeting == "" {
		greeting = chat.DefaultGreeting
	}
	return []api.Message{{Role: api.RoleAssistant, Content: greeting}}
}

// Validate checks the client-side configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.New("endpoint is required")
	}
	if c.APITimeoutSeconds <= 0 {
		return fmt.Errorf("api_timeout_seconds must be positive, got: %d", c.APITimeoutSeconds)
	}
	if c.Chat.ResetMode != ResetModeGreeting && c.Chat.ResetMode != ResetModeEmpty {
		return fmt.Errorf("unsupported reset mode: %s", c.Chat.ResetMode)
	}
	return nil
}

// ValidateServer checks the advisor server configuration.
func (c Config) ValidateServer() error {
	if strings.TrimSpace(c.Server.ListenAddr) == "" {
		return errors.New("server listen_addr is required")
	}
	switch c.Server.Provider {
	case ProviderGoogle:
		if c.Server.Google.APIKey == "" {
			return errors.New("google api_key is required (set KNOWLI_GOOGLE_API_KEY or add to config file)")
		}
	case ProviderOpenAI:
		if c.Server.OpenAI.APIKey == "" {
			return errors.New("openai api_key is required (set KNOWLI_OPENAI_API_KEY or add to config file)")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %s", c.Server.Provider)
	}
	return nil
}

// GetConfigPath returns the default path for the config file
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".knowli/config.json"
	}
	return filepath.Join(homeDir, ".knowli", "config.json")
}
