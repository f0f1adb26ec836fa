package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.Equal(t, "8080", cfg.WebPort)
	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, "carelink:", cfg.RedisPrefix)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.True(t, cfg.SeedDemo)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("SEED_DEMO", "false")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.StorageBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.False(t, cfg.SeedDemo)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadDotEnv(t *testing.T) {
	// godotenv never overrides variables that are already set
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	t.Setenv("WEB_PORT", "9999")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nWEB_PORT=1111\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "9999", cfg.WebPort)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET": ""}},
		{"unknown backend", map[string]string{"JWT_SECRET": "s", "STORAGE_BACKEND": "s3"}},
		{"postgres without url", map[string]string{"JWT_SECRET": "s", "STORAGE_BACKEND": "postgres", "DATABASE_URL": ""}},
		{"bad timezone", map[string]string{"JWT_SECRET": "s", "TIMEZONE": "Mars/Olympus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
