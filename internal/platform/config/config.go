// Package config loads the service configuration from the environment.
//
// Variables use the APP_ prefix and a single underscore after the section
// name: APP_SERVER_PORT maps to server.port, APP_DATABASE_SSL_MODE to
// database.ssl_mode. A .env file in the working directory is loaded first
// when present; variables already set in the process win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/andresavalerio/software-engineering-backend/internal/platform/db"
	"github.com/andresavalerio/software-engineering-backend/internal/platform/redis"
)

const envPrefix = "APP_"

// Config is the root configuration object.
type Config struct {
	App      AppConfig    `koanf:"app"`
	Server   ServerConfig `koanf:"server"`
	Database db.Config    `koanf:"database"`
	Redis    redis.Config `koanf:"redis"`
	Auth     AuthConfig   `koanf:"auth"`
}

// AppConfig describes the runtime environment.
type AppConfig struct {
	Env      string `koanf:"env" validate:"oneof=development production test"`
	LogLevel string `koanf:"log_level"`
}

// ServerConfig groups settings for the HTTP server.
type ServerConfig struct {
	Port               string        `koanf:"port" validate:"required"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
}

// AuthConfig holds the access token settings.
type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret" validate:"required"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"gt=0"`
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// Default returns the configuration used for any value not set in the environment.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Env:      "development",
			LogLevel: "info",
		},
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: db.Config{
			Driver:         db.DriverPostgres,
			Host:           "localhost",
			Port:           5432,
			User:           "postgres",
			Name:           "notebooks",
			SSLMode:        "disable",
			ConnectTimeout: 60 * time.Second,
			RunMigrations:  true,
		},
		Redis: redis.Config{
			TTL: 5 * time.Minute,
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
	}
}

// Load reads .env (if any) and the APP_ environment variables on top of Default.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Server.CORSAllowedOrigins = splitList(cfg.Server.CORSAllowedOrigins)

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// splitList accepts origins given either as separate values or as one
// comma-separated string and drops empty entries.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
