package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Empty(t, cfg.SeedFile)
	assert.Empty(t, cfg.DiagAddr)
	assert.Equal(t, "plain", cfg.Auth.PasswordScheme)
	assert.False(t, cfg.Auth.LockoutEnforced)
	assert.Zero(t, cfg.Auth.LoginRatePerMinute)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Empty(t, cfg.Tracing.Endpoint)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("GYM_SEED_FILE", "/etc/gym/seed.yaml")
	t.Setenv("GYM_PASSWORD_SCHEME", "bcrypt")
	t.Setenv("GYM_LOCKOUT_ENFORCED", "true")
	t.Setenv("GYM_LOGIN_RATE_PER_MINUTE", "30")
	t.Setenv("GYM_LOG_LEVEL", "debug")
	t.Setenv("GYM_LOG_FILE", "/var/log/gym.log")
	t.Setenv("GYM_OTEL_ENDPOINT", "http://collector:4318")
	t.Setenv("GYM_OTEL_ENABLED", "false")
	t.Setenv("GYM_DIAG_ADDR", ":9090")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "/etc/gym/seed.yaml", cfg.SeedFile)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordScheme)
	assert.True(t, cfg.Auth.LockoutEnforced)
	assert.Equal(t, 30, cfg.Auth.LoginRatePerMinute)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/gym.log", cfg.Log.File)
	assert.Equal(t, "http://collector:4318", cfg.Tracing.Endpoint)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, ":9090", cfg.DiagAddr)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("GYM_LOCKOUT_ENFORCED", "maybe")
	_, err := Parse()
	require.Error(t, err)
}

func TestParseRejectsNegativeRate(t *testing.T) {
	t.Setenv("GYM_LOGIN_RATE_PER_MINUTE", "-1")
	_, err := Parse()
	require.Error(t, err)
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gym.env")
	require.NoError(t, os.WriteFile(path, []byte("GYM_PASSWORD_SCHEME=argon2id\n"), 0o600))
	t.Setenv("GYM_PASSWORD_SCHEME", "")
	require.NoError(t, os.Unsetenv("GYM_PASSWORD_SCHEME"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "argon2id", cfg.Auth.PasswordScheme)
}

func TestLoadToleratesMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}
