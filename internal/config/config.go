// Package config loads the service configuration. Values come from a TOML
// file layered over defaults; the assistant API key only ever comes from the
// environment so config files stay safe to commit.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const EnvAssistantKey = "EDIDCTL_ASSISTANT_KEY"

// AssistantConfig points the service at an OpenAI-compatible endpoint.
// An empty endpoint leaves the assistant surface disabled.
type AssistantConfig struct {
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// ServiceConfig configures the HTTP service.
type ServiceConfig struct {
	Name        string
	Addr        string
	CorsOrigins []string
	Assistant   AssistantConfig
}

// DefaultServiceConfig returns the configuration used when no file is given.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Name:        "edidctl",
		Addr:        ":8080",
		CorsOrigins: []string{"http://localhost:3000"},
		Assistant: AssistantConfig{
			Model:   "gpt-4o-mini",
			Timeout: 30 * time.Second,
		},
	}
}

type fileConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	Assistant   struct {
		Endpoint string `toml:"endpoint"`
		Model    string `toml:"model"`
		Timeout  string `toml:"timeout"`
	} `toml:"assistant"`
}

// LoadServiceConfig reads path and layers defined values over the defaults.
// The assistant key is taken from EDIDCTL_ASSISTANT_KEY either way.
func LoadServiceConfig(path string) (ServiceConfig, error) {
	cfg := DefaultServiceConfig()
	cfg.Assistant.APIKey = os.Getenv(EnvAssistantKey)

	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return ServiceConfig{}, fmt.Errorf("load service config: %w", err)
	}

	if meta.IsDefined("name") {
		if name := strings.TrimSpace(raw.Name); name != "" {
			cfg.Name = name
		}
	}
	if meta.IsDefined("addr") {
		if addr := strings.TrimSpace(raw.Addr); addr != "" {
			cfg.Addr = addr
		}
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}
	if meta.IsDefined("assistant", "endpoint") {
		cfg.Assistant.Endpoint = strings.TrimSpace(raw.Assistant.Endpoint)
	}
	if meta.IsDefined("assistant", "model") {
		if model := strings.TrimSpace(raw.Assistant.Model); model != "" {
			cfg.Assistant.Model = model
		}
	}
	if meta.IsDefined("assistant", "timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Assistant.Timeout))
		if err != nil {
			return ServiceConfig{}, fmt.Errorf("parse assistant timeout: %w", err)
		}
		cfg.Assistant.Timeout = d
	}

	return cfg, nil
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return DefaultServiceConfig().CorsOrigins
	}
	return out
}
