package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 3000, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "15s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Upstream defaults
	assert.Equal(t, "http://localhost:8080", cfg.Upstream.BaseURL)
	assert.Equal(t, "10s", cfg.Upstream.Timeout.String())
	assert.Empty(t, cfg.Upstream.Headers)
	assert.Equal(t, uint32(5), cfg.Upstream.BreakerFailureThreshold)
	assert.Equal(t, "30s", cfg.Upstream.BreakerTimeout.String())

	// Search defaults
	assert.Equal(t, "UTC", cfg.Search.OperatorTimezone)
	assert.Equal(t, 100, cfg.Search.LocationLookupSize)
	assert.False(t, cfg.Search.VerifyRouteShape, "upstream routes are trusted by default")
	assert.Equal(t, "30m0s", cfg.Search.SessionIdleTTL.String())

	// Rate limit defaults
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 120, cfg.RateLimit.Requests)
	assert.Equal(t, "1m0s", cfg.RateLimit.Window.String())

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":               "9090",
		"SERVER_READ_TIMEOUT":       "30s",
		"SERVER_WRITE_TIMEOUT":      "30s",
		"UPSTREAM_BASE_URL":         "https://network.example.com",
		"UPSTREAM_TIMEOUT":          "3s",
		"UPSTREAM_HEADERS":          "X-Api-Key:secret,X-Tenant:ops",
		"UPSTREAM_BREAKER_FAILURES": "2",
		"UPSTREAM_BREAKER_TIMEOUT":  "5s",
		"OPERATOR_TIMEZONE":         "Europe/Istanbul",
		"LOCATION_LOOKUP_SIZE":      "250",
		"VERIFY_ROUTE_SHAPE":        "true",
		"SEARCH_SESSION_IDLE_TTL":   "5m",
		"RATE_LIMIT_ENABLED":        "false",
		"LOG_LEVEL":                 "debug",
		"LOG_FORMAT":                "console",
		"APP_ENV":                   "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "https://network.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, "3s", cfg.Upstream.Timeout.String())
	assert.Equal(t, map[string]string{"X-Api-Key": "secret", "X-Tenant": "ops"}, cfg.Upstream.Headers)
	assert.Equal(t, uint32(2), cfg.Upstream.BreakerFailureThreshold)
	assert.Equal(t, "5s", cfg.Upstream.BreakerTimeout.String())
	assert.Equal(t, "Europe/Istanbul", cfg.Search.OperatorTimezone)
	assert.Equal(t, "Europe/Istanbul", cfg.OperatorLocation().String())
	assert.Equal(t, 250, cfg.Search.LocationLookupSize)
	assert.True(t, cfg.Search.VerifyRouteShape)
	assert.Equal(t, "5m0s", cfg.Search.SessionIdleTTL.String())
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
}

// TestLoad_PartialOverrides tests that only overridden values change.
func TestLoad_PartialOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT": "9000",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port, "overridden port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
		errMsg  string
	}{
		{"valid port 1", "1", false, ""},
		{"valid port 80", "80", false, ""},
		{"valid port 3000", "3000", false, ""},
		{"valid port 65535", "65535", false, ""},
		{"invalid port 0", "0", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port negative", "-1", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port too high", "65536", true, "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveDurations tests that durations must be positive.
func TestLoad_Validation_PositiveDurations(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative read timeout", "SERVER_READ_TIMEOUT", "-1s", "SERVER_READ_TIMEOUT must be positive"},
		{"zero write timeout", "SERVER_WRITE_TIMEOUT", "0s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero upstream timeout", "UPSTREAM_TIMEOUT", "0s", "UPSTREAM_TIMEOUT must be positive"},
		{"negative upstream timeout", "UPSTREAM_TIMEOUT", "-1s", "UPSTREAM_TIMEOUT must be positive"},
		{"zero breaker timeout", "UPSTREAM_BREAKER_TIMEOUT", "0s", "UPSTREAM_BREAKER_TIMEOUT must be positive"},
		{"zero session ttl", "SEARCH_SESSION_IDLE_TTL", "0s", "SEARCH_SESSION_IDLE_TTL must be positive"},
		{"zero rate limit window", "RATE_LIMIT_WINDOW", "0s", "RATE_LIMIT_WINDOW must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_UpstreamLessThanWrite tests that upstream calls fit inside the write timeout.
func TestLoad_Validation_UpstreamLessThanWrite(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_WRITE_TIMEOUT": "5s",
		"UPSTREAM_TIMEOUT":     "5s",
	})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPSTREAM_TIMEOUT")
	assert.Contains(t, err.Error(), "should be less than")
	assert.Nil(t, cfg)
}

// TestLoad_Validation_Upstream tests base URL and breaker validation.
func TestLoad_Validation_Upstream(t *testing.T) {
	tests := []struct {
		name   string
		vars   map[string]string
		errMsg string
	}{
		{"relative base url", map[string]string{"UPSTREAM_BASE_URL": "/api"}, "UPSTREAM_BASE_URL"},
		{"unsupported scheme", map[string]string{"UPSTREAM_BASE_URL": "ftp://network"}, "UPSTREAM_BASE_URL"},
		{"zero breaker failures", map[string]string{"UPSTREAM_BREAKER_FAILURES": "0"}, "UPSTREAM_BREAKER_FAILURES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_Search tests search settings validation.
func TestLoad_Validation_Search(t *testing.T) {
	tests := []struct {
		name   string
		vars   map[string]string
		errMsg string
	}{
		{"unknown timezone", map[string]string{"OPERATOR_TIMEZONE": "Mars/Olympus"}, "OPERATOR_TIMEZONE"},
		{"zero lookup size", map[string]string{"LOCATION_LOOKUP_SIZE": "0"}, "LOCATION_LOOKUP_SIZE"},
		{"zero rate limit", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_RateLimitDisabled tests that limits are not checked when disabled.
func TestLoad_Validation_RateLimitDisabled(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"RATE_LIMIT_ENABLED":  "false",
		"RATE_LIMIT_REQUESTS": "0",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.RateLimit.Enabled)
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid fatal", "fatal", true},
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogFormat tests log format validation.
func TestLoad_Validation_LogFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid json", "json", false},
		{"valid console", "console", false},
		{"invalid text", "text", true},
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_FORMAT": tt.format})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_FORMAT must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_AppEnv tests app environment validation.
func TestLoad_Validation_AppEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantErr bool
	}{
		{"valid development", "development", false},
		{"valid staging", "staging", false},
		{"valid production", "production", false},
		{"invalid local", "local", true},
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "APP_ENV must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_Environment tests the environment helper methods.
func TestConfig_Environment(t *testing.T) {
	tests := []struct {
		env             string
		wantDevelopment bool
		wantProduction  bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDevelopment, cfg.IsDevelopment())
			assert.Equal(t, tt.wantProduction, cfg.IsProduction())
		})
	}
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"UPSTREAM_BASE_URL",
		"UPSTREAM_TIMEOUT",
		"UPSTREAM_HEADERS",
		"UPSTREAM_BREAKER_FAILURES",
		"UPSTREAM_BREAKER_TIMEOUT",
		"OPERATOR_TIMEZONE",
		"LOCATION_LOOKUP_SIZE",
		"VERIFY_ROUTE_SHAPE",
		"SEARCH_SESSION_IDLE_TTL",
		"RATE_LIMIT_ENABLED",
		"RATE_LIMIT_REQUESTS",
		"RATE_LIMIT_WINDOW",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
