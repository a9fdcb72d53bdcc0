// Package config maps LIFTLOG_-prefixed environment variables (and an
// optional .env file) onto the service configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LIFTLOG_"

type Config struct {
	Port           string `koanf:"port" validate:"required"`
	DatabasePath   string `koanf:"database_path" validate:"required"`
	Timezone       string `koanf:"timezone" validate:"required"`
	AllowedOrigins string `koanf:"allowed_origins" validate:"required"`
}

func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	config := &Config{
		Port:           "8080",
		DatabasePath:   filepath.Join("data", "liftlog.db"),
		Timezone:       "UTC",
		AllowedOrigins: "http://localhost:5173",
	}
	if err := k.Unmarshal("", config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return config, nil
}

// Location resolves the configured IANA timezone. The analytics window
// follows this clock, so it is an explicit setting rather than an
// ambient assumption about the host.
func (config *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", config.Timezone, err)
	}
	return location, nil
}

// Origins splits the comma-separated trusted origin list for CORS.
func (config *Config) Origins() []string {
	parts := strings.Split(config.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
