package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gsmarena-backend/internal/gsmarena"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GSMARENA_BASE_URL", "")
	t.Setenv("GSMARENA_PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)

	opts := cfg.ClientOptions()
	require.Equal(t, gsmarena.DefaultBaseUrl, opts.BaseUrl)
	require.Equal(t, 10*time.Second, opts.Timeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
		// comments are allowed
		base_url: "https://mirror.example.com/",
		requests_per_second: 1.5,
	}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		timeout_seconds: 3,
	}`), 0600))
	t.Setenv("GSMARENA_BASE_URL", "")
	t.Setenv("GSMARENA_PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, Config{
		BaseUrl:           "https://mirror.example.com/",
		Port:              9090,
		TimeoutSeconds:    3,
		RequestsPerSecond: 1.5,
	}, cfg)

	t.Setenv("GSMARENA_BASE_URL", "http://localhost:3000/")
	t.Setenv("GSMARENA_PORT", "eighty")
	_, err = LoadConfig()
	require.Error(t, err)
}
