package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string        `env:"INVASION_SSH_ADDR"     envDefault:":23234"`
	HostKeyPath string        `env:"INVASION_HOST_KEY"`
	IdleTimeout time.Duration `env:"INVASION_IDLE_TIMEOUT" envDefault:"30m"`
	LogLevel    string        `env:"INVASION_LOG_LEVEL"    envDefault:"info"`
}

// DefaultServerConfig returns the server configuration used when the
// environment is not consulted.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		LogLevel:    "info",
	}
}

// LoadServerEnv reads the server configuration from environment variables,
// falling back to defaults for unset variables.
func LoadServerEnv() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return DefaultServerConfig(), fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
