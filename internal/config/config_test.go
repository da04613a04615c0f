package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "DATABASE_URL", "APP_MIGRATE", "RATE_RPS",
		"WORKERS", "RABBITMQ_URL", "OTEL_EXPORTER_OTLP_ENDPOINT", "DEFAULT_CREDIT_LIMIT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.True(t, cfg.Migrate)
	assert.Equal(t, 100, cfg.RateRPS)
	assert.Equal(t, 4, cfg.Workers)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "minivenmo.activity", cfg.RabbitMQExchange)
	assert.Equal(t, "1000", cfg.DefaultCreditLimit.String())

	_, ok := cfg.SQLitePath()
	assert.False(t, ok)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"APP_MIGRATE", "maybe"},
		{"RATE_RPS", "fast"},
		{"WORKERS", "0"},
		{"DEFAULT_CREDIT_LIMIT", "lots"},
		{"DEFAULT_CREDIT_LIMIT", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestSQLitePath(t *testing.T) {
	tests := []struct {
		url    string
		path   string
		sqlite bool
	}{
		{"sqlite://data/minivenmo.db", "data/minivenmo.db", true},
		{"sqlite::memory:", ":memory:", true},
		{"file:/tmp/x.db", "/tmp/x.db", true},
		{"postgres://u:p@localhost:5432/db", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			path, ok := Config{DatabaseURL: tt.url}.SQLitePath()
			assert.Equal(t, tt.sqlite, ok)
			assert.Equal(t, tt.path, path)
		})
	}
}
