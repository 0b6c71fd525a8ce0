package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PIN", "4321")
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, "pgx", cfg.DB.Driver)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenDuration)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "postgres://exito_user:@localhost:5432/exito_db?sslmode=disable", cfg.DB.DSN())
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := strings.Join([]string{
		"APP_PIN=9999",
		"JWT_SECRET=" + testSecret,
		"DATA_BACKEND=MEMORY",
		"LOG_LEVEL=debug",
		"CORS_ORIGINS=http://a.test, http://b.test,",
		"REDIS_ENABLED=false",
	}, "\n")
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv does not override variables already present.
	for _, key := range []string{"APP_PIN", "JWT_SECRET", "DATA_BACKEND", "LOG_LEVEL", "CORS_ORIGINS", "REDIS_ENABLED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "9999", cfg.Auth.PIN)
}

func TestLoad_MalformedValues(t *testing.T) {
	t.Setenv("APP_PIN", "1234")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("REDIS_DB", "two")
	t.Setenv("TOKEN_DURATION", "forever")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "REDIS_DB")
	assert.ErrorContains(t, err, "TOKEN_DURATION")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Backend:  "sqlite",
		TimeZone: "Mars/Olympus",
		Auth:     AuthConfig{JWTSecret: "short"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	for _, want := range []string{"DATA_BACKEND", "APP_TIMEZONE", "APP_PIN", "JWT_SECRET", "TOKEN_DURATION"} {
		assert.ErrorContains(t, err, want)
	}
}
