package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Port        string
	Backend     string
	TimeZone    string
	LogLevel    slog.Level
	CORSOrigins []string

	DB    DBConfig
	Redis RedisConfig
	Auth  AuthConfig

	RateLimit       int
	RateLimitWindow time.Duration
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the connection URL accepted by both pgx and lib/pq.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type AuthConfig struct {
	PIN           string
	JWTSecret     string
	Issuer        string
	TokenDuration time.Duration
	SecureCookie  bool
}

// Load reads the environment, after merging an optional .env file.
// Malformed values are collected and reported together.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	var errs []error

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Backend:     strings.ToLower(getEnv("DATA_BACKEND", BackendPostgres)),
		TimeZone:    getEnv("APP_TIMEZONE", "America/Argentina/Buenos_Aires"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", "pgx"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "exito_user"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "exito_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Auth: AuthConfig{
			PIN:       os.Getenv("APP_PIN"),
			JWTSecret: os.Getenv("JWT_SECRET"),
			Issuer:    getEnv("JWT_ISSUER", "exito"),
		},
	}

	var err error
	if cfg.LogLevel, err = parseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		errs = append(errs, err)
	}
	if cfg.Redis.Enabled, err = strconv.ParseBool(getEnv("REDIS_ENABLED", "true")); err != nil {
		errs = append(errs, fmt.Errorf("REDIS_ENABLED: %w", err))
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		errs = append(errs, fmt.Errorf("REDIS_DB: %w", err))
	}
	if cfg.Auth.TokenDuration, err = time.ParseDuration(getEnv("TOKEN_DURATION", "720h")); err != nil {
		errs = append(errs, fmt.Errorf("TOKEN_DURATION: %w", err))
	}
	if cfg.Auth.SecureCookie, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "false")); err != nil {
		errs = append(errs, fmt.Errorf("COOKIE_SECURE: %w", err))
	}
	if cfg.RateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT", "100")); err != nil {
		errs = append(errs, fmt.Errorf("RATE_LIMIT: %w", err))
	}
	if cfg.RateLimitWindow, err = time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m")); err != nil {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW: %w", err))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Backend != BackendMemory && c.Backend != BackendPostgres {
		errs = append(errs, fmt.Errorf("DATA_BACKEND must be %q or %q, got %q", BackendMemory, BackendPostgres, c.Backend))
	}
	if c.Backend == BackendPostgres && c.DB.Driver != "pgx" && c.DB.Driver != "postgres" {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be \"pgx\" or \"postgres\", got %q", c.DB.Driver))
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
	}
	if c.Auth.PIN == "" {
		errs = append(errs, errors.New("APP_PIN is required"))
	}
	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 32 characters"))
	}
	if c.Auth.TokenDuration <= 0 {
		errs = append(errs, errors.New("TOKEN_DURATION must be positive"))
	}
	if c.RateLimit < 0 {
		errs = append(errs, errors.New("RATE_LIMIT cannot be negative"))
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
