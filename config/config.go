package config

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

// Config is the top-level service configuration.
type Config struct {
	ServerAddr string         `json:"server_addr,omitempty"`
	LLM        *LLMConfig     `json:"llm,omitempty"`
	Tracing    *TracingConfig `json:"tracing,omitempty"`
}

// LLMConfig selects the model provider and credential.
// APIKeyEnv names an environment variable so the key can stay out of the file.
type LLMConfig struct {
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	APIKey    string `json:"api_key,omitempty"`
	APIKeyEnv string `json:"api_key_env,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
}

// TracingConfig configures the optional LLM-call telemetry sink.
type TracingConfig struct {
	Endpoint  string `json:"endpoint,omitempty"`
	Project   string `json:"project,omitempty"`
	APIKey    string `json:"api_key,omitempty"`
	APIKeyEnv string `json:"api_key_env,omitempty"`
}

// LoadEnv loads a .env file if one exists; missing files are fine,
// the OS environment is used as-is.
func LoadEnv(path string) {
	if path == "" {
		path = ".env"
	}
	if err := gotenv.Load(path); err != nil {
		slog.Warn("No .env file found, using OS environment", slog.String("path", path))
	}
}

// Load reads JSON config from disk and resolves env-referenced credentials.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return Config{}, errors.New("config must include llm.provider")
	}
	if cfg.LLM.APIKey == "" && cfg.LLM.APIKeyEnv != "" {
		cfg.LLM.APIKey = os.Getenv(cfg.LLM.APIKeyEnv)
	}
	if cfg.Tracing != nil && cfg.Tracing.APIKey == "" && cfg.Tracing.APIKeyEnv != "" {
		cfg.Tracing.APIKey = os.Getenv(cfg.Tracing.APIKeyEnv)
	}
	return cfg, nil
}
