package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestLoad_YAMLAndDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, ".", "config.yml", `
environment: production
http:
  addr: ":9090"
  allowedOrigins: ["https://app.example.fr"]
matching:
  notifyMinScore: 75
geocoder:
  timeout: 3s
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://app.example.fr"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 75, cfg.Matching.NotifyMinScore)
	require.Equal(t, 3*time.Second, cfg.Geocoder.Timeout)

	// defaults
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.InDelta(t, 150, cfg.Matching.SearchRadiusKm, 0)
	require.EqualValues(t, 20, cfg.Matching.DefaultLimit)
	require.Equal(t, "https://api-adresse.data.gouv.fr", cfg.Geocoder.BaseURL)
	require.Equal(t, 10, cfg.Worker.MaxWorkers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, ".", "config.yml", "http:\n  addr: \":9090\"\n")
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("MATCHING_MAX_LIMIT", "50")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.EqualValues(t, 50, cfg.Matching.MaxLimit)
}

func TestLoad_DotEnvWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, ".", ".env", "DATABASE_HOST=db.internal\nWORKER_MAX_WORKERS=3\n")
	t.Cleanup(func() {
		_ = os.Unsetenv("DATABASE_HOST")
		_ = os.Unsetenv("WORKER_MAX_WORKERS")
	})

	cfg, err := config.Load("missing.yml")
	require.NoError(t, err)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 3, cfg.Worker.MaxWorkers)
	require.Equal(t, "development", cfg.Environment)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, ".", "config.yml", "http: [not, a, map")

	_, err := config.Load(path)
	require.Error(t, err)
}
