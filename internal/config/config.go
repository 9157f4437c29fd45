// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"gymontherock/internal/telemetry"
)

// LogConfig controls the slog handler.
type LogConfig struct {
	Level      string `env:"LEVEL" envDefault:"warn"`
	File       string `env:"FILE"`
	Console    bool   `env:"CONSOLE" envDefault:"true"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"28"`
}

// AuthConfig controls the authentication gate.
type AuthConfig struct {
	PasswordScheme     string `env:"PASSWORD_SCHEME" envDefault:"plain"`
	LockoutEnforced    bool   `env:"LOCKOUT_ENFORCED" envDefault:"false"`
	LoginRatePerMinute int    `env:"LOGIN_RATE_PER_MINUTE" envDefault:"0"`
	LoginBurst         int    `env:"LOGIN_BURST" envDefault:"10"`
}

// Config is the full process configuration.
type Config struct {
	SeedFile string `env:"SEED_FILE"`
	DiagAddr string `env:"DIAG_ADDR"`

	Auth    AuthConfig
	Log     LogConfig               `envPrefix:"LOG_"`
	Tracing telemetry.TracingConfig `envPrefix:"OTEL_"`
}

const prefix = "GYM_"

// Load reads an optional .env file and then parses GYM_* variables.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse reads GYM_* variables from the process environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Auth.LoginRatePerMinute < 0 {
		return Config{}, errors.New("GYM_LOGIN_RATE_PER_MINUTE must not be negative")
	}
	return cfg, nil
}
