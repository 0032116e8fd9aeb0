package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 5000, cfg.HTTPPort)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:5000", cfg.HTTPAddr())
	assert.Empty(t, cfg.GRPCAddr())
	assert.Empty(t, cfg.MetricsAddr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PROBE_GRPC_PORT", "9090")
	t.Setenv("METRICS_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, ":9090", cfg.GRPCAddr())
	assert.Equal(t, ":9100", cfg.MetricsAddr())
}

func TestOptionalListenersIgnoreAppHost(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", HTTPPort: 5000, LogLevel: "info"}
	cfg.Probe.GRPCPort = 9090
	cfg.Metrics.Port = 9100

	assert.Equal(t, "127.0.0.1:5000", cfg.HTTPAddr())
	assert.Equal(t, ":9090", cfg.GRPCAddr())
	assert.Equal(t, ":9100", cfg.MetricsAddr())
}

func TestLoadRejectsMalformedPort(t *testing.T) {
	t.Setenv("APP_PORT", "http")

	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Host: "127.0.0.1", HTTPPort: 5000, LogLevel: "info"}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.HTTPPort = 0 }, wantErr: "invalid HTTP port"},
		{name: "port too large", mutate: func(c *Config) { c.HTTPPort = 70000 }, wantErr: "invalid HTTP port"},
		{name: "negative probe port", mutate: func(c *Config) { c.Probe.GRPCPort = -1 }, wantErr: "invalid probe gRPC port"},
		{name: "metrics port too large", mutate: func(c *Config) { c.Metrics.Port = 65536 }, wantErr: "invalid metrics port"},
		{name: "probe clashes with http", mutate: func(c *Config) { c.Probe.GRPCPort = 5000 }, wantErr: "conflicts with HTTP port"},
		{
			name: "metrics clashes with probe",
			mutate: func(c *Config) {
				c.Probe.GRPCPort = 9090
				c.Metrics.Port = 9090
			},
			wantErr: "conflicts with",
		},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
