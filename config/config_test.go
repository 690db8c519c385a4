package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	dir := writeEnvFile(t, `DB_HOST=db
DB_USER=emax
DB_PASSWORD=secret
DB_NAME=emax
CACHE_TTL=30s
ALLOWED_ORIGINS=https://emax.example, https://www.emax.example
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, time.Minute, cfg.SubmissionRateWindow)
	assert.Equal(t, 10, cfg.SubmissionRateLimit)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, []string{"https://emax.example", "https://www.emax.example"}, cfg.Origins())
	assert.Equal(t, "host=db user=emax password=secret dbname=emax port=5432 sslmode=disable", cfg.DSN())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := writeEnvFile(t, "DB_DRIVER=postgres\n")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/emax.db")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/emax.db", cfg.DSN())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "emax.db", cfg.SQLitePath)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without host", map[string]string{"DB_DRIVER": "postgres"}},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"bad log level", map[string]string{"DB_DRIVER": "sqlite", "LOG_LEVEL": "verbose"}},
		{"negative limit", map[string]string{"DB_DRIVER": "sqlite", "SUBMISSION_RATE_LIMIT": "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestOrigins_Empty(t *testing.T) {
	assert.Empty(t, Config{AllowedOrigins: " , "}.Origins())
}
