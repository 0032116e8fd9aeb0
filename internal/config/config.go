package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
// The application name is not part of it: it is fixed at generation time.
type Config struct {
	// Server configuration
	Host     string `env:"APP_HOST" envDefault:"127.0.0.1"`
	HTTPPort int    `env:"APP_PORT" envDefault:"5000"`
	Debug    bool   `env:"APP_DEBUG" envDefault:"false"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Probe configuration
	Probe ProbeConfig

	// Metrics configuration
	Metrics MetricsConfig
}

// ProbeConfig configures the optional gRPC health endpoint
type ProbeConfig struct {
	GRPCPort int `env:"PROBE_GRPC_PORT" envDefault:"0"`
}

// MetricsConfig configures the optional Prometheus listener
type MetricsConfig struct {
	Port int `env:"METRICS_PORT" envDefault:"0"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	// Zero disables the optional listeners
	if c.Probe.GRPCPort < 0 || c.Probe.GRPCPort > 65535 {
		return fmt.Errorf("invalid probe gRPC port: %d", c.Probe.GRPCPort)
	}
	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("invalid metrics port: %d", c.Metrics.Port)
	}

	ports := map[int]string{c.HTTPPort: "HTTP"}
	for name, port := range map[string]int{"probe gRPC": c.Probe.GRPCPort, "metrics": c.Metrics.Port} {
		if port == 0 {
			continue
		}
		if other, ok := ports[port]; ok {
			return fmt.Errorf("%s port %d conflicts with %s port", name, port, other)
		}
		ports[port] = name
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// HTTPAddr returns the HTTP server address
func (c *Config) HTTPAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.HTTPPort))
}

// GRPCAddr returns the gRPC probe address, or "" when disabled.
// It binds all interfaces: kubelet probes the pod IP, not loopback.
func (c *Config) GRPCAddr() string {
	if c.Probe.GRPCPort == 0 {
		return ""
	}
	return net.JoinHostPort("", strconv.Itoa(c.Probe.GRPCPort))
}

// MetricsAddr returns the metrics listener address, or "" when disabled.
// Scrapers reach it on the pod IP, so it binds all interfaces.
func (c *Config) MetricsAddr() string {
	if c.Metrics.Port == 0 {
		return ""
	}
	return net.JoinHostPort("", strconv.Itoa(c.Metrics.Port))
}
